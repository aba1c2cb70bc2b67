package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "recovers from panic and returns 500",
			path: "/panic",
			setupHandler: func(router *gin.Engine) {
				router.GET("/panic", func(c *gin.Context) {
					panic("test panic")
				})
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "internal_error")
				assert.Contains(t, w.Body.String(), "req-panic")
			},
		},
		{
			name: "passes through when no panic",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "ok", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-panic")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
