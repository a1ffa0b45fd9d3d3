package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		fromCtx, _ := c.Request.Context().Value(domain.KeyRequestID).(string)
		c.String(http.StatusOK, fromCtx)
	})

	t.Run("Should generate an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Should propagate the inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-123", w.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	newRouter := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestID(), middleware.ErrorHandler())
		r.GET("/", func(c *gin.Context) { _ = c.Error(err) })
		return r
	}

	t.Run("Should render client errors with their message", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(apperror.Conflict("The email already exists in the database")).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "The email already exists in the database", body.Message)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("Should expose the failing field for validation errors", func(t *testing.T) {
		vErr := domain.NewValidationError("email", domain.MsgInvalidEmail)
		w := httptest.NewRecorder()
		newRouter(apperror.Wrap(http.StatusBadRequest, "Error: "+vErr.Message, vErr)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Error: "+domain.MsgInvalidEmail, body.Message)
		assert.Equal(t, map[string]interface{}{"field": "email"}, body.Error)
	})

	t.Run("Should hide internal error details", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(errors.New("pq: connection refused")).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.IntakeRateLimitConfig(2, time.Minute)))
	r.POST("/candidates", func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/candidates", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, send().Code)

	blocked := send()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodPost, "/candidates", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusCreated, w.Code, "limits are per client IP")
}

func TestRateLimitDisabled(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(0, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(isProduction bool, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(middleware.CORSMiddleware("https://ats.example.com", isProduction))
		r.POST("/", func(c *gin.Context) {})
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Should allow the configured frontend", func(t *testing.T) {
		w := preflight(true, "https://ats.example.com")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://ats.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should allow localhost only outside production", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, preflight(false, "http://localhost:3000").Code)
		assert.Equal(t, http.StatusForbidden, preflight(true, "http://localhost:3000").Code)
	})

	t.Run("Should reject unknown origins", func(t *testing.T) {
		w := preflight(false, "https://evil.example.org")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(true))
	r.GET("/v1/health", func(c *gin.Context) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
