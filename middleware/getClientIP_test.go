package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "first address of X-Forwarded-For wins",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:    "203.0.113.7",
		},
		{
			name:    "X-Real-IP when no forwarded header",
			headers: map[string]string{"X-Real-IP": "203.0.113.8"},
			want:    "203.0.113.8",
		},
		{
			name: "remote address without headers",
			want: "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			require.Equal(t, tt.want, getClientIP(c))
		})
	}
}
