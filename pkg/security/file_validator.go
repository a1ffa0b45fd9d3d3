package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Lowercase file extension
	DetectedMIME string // MIME type sniffed from content
	ContentType  string // Canonical MIME type to store the file with
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume types
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".docx": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
}

// Canonical content type per extension
var resumeContentTypes = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
}

// Sniffed MIME types accepted per extension. DOCX is a zip container and is
// frequently sniffed as zip or octet-stream.
var sniffedMIMETypes = map[string]map[string]bool{
	".pdf":  {MIMEPDF: true},
	".docx": {"application/zip": true, "application/octet-stream": true, MIMEDOCX: true},
}

// ValidateResumeFile performs 3-layer file validation:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. Sniffed MIME type must be consistent with the extension
func ValidateResumeFile(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	contentType, ok := resumeContentTypes[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	// http.DetectContentType may append parameters, e.g. "; charset=utf-8"
	mime := strings.TrimSpace(strings.SplitN(detectedMIME, ";", 2)[0])
	if !sniffedMIMETypes[ext][mime] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.ContentType = contentType
	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedResumeExtensions lists accepted extensions for error messages
func AllowedResumeExtensions() []string {
	return []string{".pdf", ".docx"}
}
