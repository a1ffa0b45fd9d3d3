package middleware

import (
	"errors"
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			var detail interface{}
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				detail = gin.H{"field": vErr.Field}
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// Never expose internal error details to clients
		reqID, _ := c.Get(string(domain.KeyRequestID))
		logger.Log.Error("Request failed",
			"error", err.Error(),
			"path", c.FullPath(),
			"request_id", reqID,
		)
		status := apperror.StatusOf(err)
		message := "An unexpected error occurred. Please try again later."
		if status == http.StatusServiceUnavailable && appErr != nil {
			message = appErr.Message
		}
		response.Error(c, status, message, nil)
	}
}
