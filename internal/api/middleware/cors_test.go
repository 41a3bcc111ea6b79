package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(domains []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ConfigCORS(domains))
	r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })

	return r
}

func TestConfigCORS(t *testing.T) {
	tests := []struct {
		name       string
		domains    []string
		origin     string
		wantStatus int
		wantHeader string
	}{
		{"allowed origin", []string{"http://pos.local"}, "http://pos.local", http.StatusOK, "http://pos.local"},
		{"rejected origin", []string{"http://pos.local"}, "http://evil.example", http.StatusForbidden, ""},
		{"wildcard", []string{"*"}, "http://anything.example", http.StatusOK, "*"},
		{"empty list allows all", nil, "http://anything.example", http.StatusOK, "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			newRouter(tt.domains).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
