package domain

import "context"

// UploadedFile is returned after a resume upload; it is the shape a submission's cv expects.
type UploadedFile struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

// FileStorage writes objects to the resume bucket and returns their storage path.
type FileStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type ResumeUploadUsecase interface {
	Upload(ctx context.Context, filename string, data []byte) (*UploadedFile, error)
}
