package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, method, path string, register func(r *gin.Engine)) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	r := gin.New()
	r.Use(Recovery())
	register(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w, body
}

func TestInternalError_DevelopmentIncludesDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	w, body := serve(t, http.MethodGet, "/boom", func(r *gin.Engine) {
		r.GET("/boom", func(c *gin.Context) {
			InternalError(c, "failed to resolve hostname", fmt.Errorf("lookup hostname: %w", fs.ErrPermission))
		})
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeServerError, body.Error)
	assert.Equal(t, "failed to resolve hostname", body.Message)
	assert.Contains(t, body.Details, "lookup hostname")
}

func TestInternalError_ProductionSanitizesDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, body := serve(t, http.MethodGet, "/boom", func(r *gin.Engine) {
		r.GET("/boom", func(c *gin.Context) {
			InternalError(c, "", fmt.Errorf("dial tcp 10.0.0.1:53: connection refused"))
		})
	})

	assert.Equal(t, "an error occurred", body.Message)
	assert.Equal(t, "connection error occurred", body.Details)
}

func TestRecovery_WritesEnvelope(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	w, body := serve(t, http.MethodGet, "/panic", func(r *gin.Engine) {
		r.GET("/panic", func(c *gin.Context) {
			panic("unexpected")
		})
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeServerError, body.Error)
	assert.Equal(t, "an error occurred", body.Details)
}

func TestNotFound(t *testing.T) {
	w, body := serve(t, http.MethodGet, "/missing", func(r *gin.Engine) {
		r.NoRoute(func(c *gin.Context) { NotFound(c, "route") })
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, body.Error)
	assert.Equal(t, "route not found", body.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	w, body := serve(t, http.MethodPost, "/health", func(r *gin.Engine) {
		r.HandleMethodNotAllowed = true
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.NoMethod(MethodNotAllowed)
	})

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, CodeMethodNotAllowed, body.Error)
	assert.Equal(t, "POST not allowed on /health", body.Message)
}

func TestTooManyRequests_DefaultMessage(t *testing.T) {
	w, body := serve(t, http.MethodGet, "/", func(r *gin.Engine) {
		r.GET("/", func(c *gin.Context) { TooManyRequests(c, "") })
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, CodeTooManyRequests, body.Error)
	assert.Equal(t, "too many requests", body.Message)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, CategoryUnknown},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"path error", &fs.PathError{Op: "stat", Path: "/vault/secrets/config", Err: fs.ErrPermission}, CategoryFilesystem},
		{"hostname", fmt.Errorf("failed to resolve hostname"), CategoryNetwork},
		{"other", fmt.Errorf("something odd"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.err))
		})
	}
}

func TestSanitize(t *testing.T) {
	err := &fs.PathError{Op: "stat", Path: "/vault/secrets/config", Err: fs.ErrPermission}

	t.Setenv("ENVIRONMENT", "development")
	assert.Equal(t, err.Error(), Sanitize(err))

	t.Setenv("ENVIRONMENT", "production")
	assert.Equal(t, "filesystem operation failed", Sanitize(err))
	assert.Equal(t, "", Sanitize(nil))
}
