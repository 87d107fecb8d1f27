package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/test", handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(RequestID())

	t.Run("Generates id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
	t.Run("Keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	})
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newTestRouter(RequestID(), AccessLog(zap.New(core)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "req-2")
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["http_method"])
	assert.Equal(t, "/test", fields["http_path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "req-2", fields["request_id"])
}

func TestRateLimit(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		r := newTestRouter(RateLimit(0, 0))
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
	t.Run("Rejects once burst is used", func(t *testing.T) {
		r := newTestRouter(RateLimit(0.001, 2))
		codes := make([]int, 3)
		for i := range codes {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
			codes[i] = w.Code
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})
}

func TestAcceptJSON(t *testing.T) {
	testCases := []struct {
		name           string
		accept         string
		expectedStatus int
	}{
		{"No accept header", "", http.StatusOK},
		{"JSON", "application/json", http.StatusOK},
		{"Wildcard", "*/*", http.StatusOK},
		{"Browser default", "text/html,application/xhtml+xml,*/*;q=0.8", http.StatusOK},
		{"Plain text only", "text/plain", http.StatusNotFound},
		{"HTML only", "text/html", http.StatusNotFound},
	}
	r := newTestRouter(AcceptJSON())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.accept != "" {
				req.Header.Set("Accept", tc.accept)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
