package v1

import (
	"errors"
	"io"
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipart framing allowance on top of the file limit
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadUC domain.ResumeUploadUsecase
	maxBytes int64
}

func NewUploadHandler(r *gin.RouterGroup, uploadUC domain.ResumeUploadUsecase, maxBytes int64, mw ...gin.HandlerFunc) {
	handler := &UploadHandler{uploadUC: uploadUC, maxBytes: maxBytes}

	r.POST("/upload", append(mw, handler.UploadResume)...)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Stores a PDF or DOCX resume and returns the path and MIME type to reference from a candidate's cv.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file (PDF or DOCX)"
// @Success      200   {object}  response.Response{data=domain.UploadedFile}
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      415   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /upload [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes+multipartOverhead {
			c.Error(apperror.TooLarge("File exceeds the maximum upload size"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.TooLarge("File exceeds the maximum upload size"))
			return
		}
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read uploaded file"))
		return
	}

	uploaded, err := h.uploadUC.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", uploaded)
}
