package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/stit/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDAssignsAndPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, w.Header().Get(requestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src 'self' data:")
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type sampleForm struct {
	Title string `form:"title" binding:"required,max=5"`
}

func bindStatus(t *testing.T, body string) (string, error) {
	t.Helper()
	var got error
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var f sampleForm
		got = BindForm(c, &f)
		c.String(http.StatusOK, f.Title)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Body.String(), got
}

func TestBindForm(t *testing.T) {
	title, err := bindStatus(t, url.Values{"title": {"abc"}}.Encode())
	require.NoError(t, err)
	assert.Equal(t, "abc", title)

	_, err = bindStatus(t, "")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	msg, ok := apperrors.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Title is required", msg)

	_, err = bindStatus(t, url.Values{"title": {"too long"}}.Encode())
	msg, _ = apperrors.UserMessage(err)
	assert.Equal(t, "Title must be at most 5 characters", msg)
}

func TestHandleWebErrorStatuses(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		location string
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusFound, "/login"},
		{"wrong role", apperrors.ErrUnauthorizedRole, http.StatusFound, "/login"},
		{"kind", apperrors.ErrInvalidRecordKind, http.StatusNotFound, ""},
		{"unexpected", assert.AnError, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { HandleWebError(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}
