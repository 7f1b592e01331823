package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(token string) *gin.Engine {
	r := gin.New()
	r.Use(BearerToken(token))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestBearerTokenDisabledWhenEmpty(t *testing.T) {
	r := newAuthRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with auth disabled, got %d", w.Code)
	}
}

func TestBearerTokenAccepted(t *testing.T) {
	r := newAuthRouter("s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with valid token, got %d", w.Code)
	}
}

func TestBearerTokenRejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic s3cret"},
		{name: "wrong token", header: "Bearer nope"},
		{name: "no token", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter("s3cret")

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRequestIDEchoedOnResponse(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("Expected X-Request-ID echoed back, got %q", got)
	}

	// Without a client-provided ID one is generated
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/ping", nil))
	if w2.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID")
	}
}
