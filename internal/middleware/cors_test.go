package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(allowed []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(allowed))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doCORS(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	r := corsRouter([]string{"https://app.example.com"})

	w := doCORS(r, http.MethodGet, "https://app.example.com")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("missing allow-origin header, got %q", got)
	}
	if w.Header().Get("Vary") != "Origin" {
		t.Fatalf("Vary header missing")
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := corsRouter([]string{"https://app.example.com"})

	w := doCORS(r, http.MethodGet, "https://evil.example.com")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("rejected origin must get no CORS headers")
	}
}

func TestCORSEmptyAllowlistAdmitsAnyOrigin(t *testing.T) {
	r := corsRouter(nil)

	w := doCORS(r, http.MethodGet, "https://anywhere.example.com")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example.com" {
		t.Fatalf("origin must be reflected, got %q", got)
	}
}

func TestCORSNoOriginPassesThrough(t *testing.T) {
	r := corsRouter([]string{"https://app.example.com"})

	w := doCORS(r, http.MethodGet, "")
	if w.Code != http.StatusOK {
		t.Fatalf("origin-less request must pass, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter([]string{"https://app.example.com"})

	w := doCORS(r, http.MethodOptions, "https://app.example.com")
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight must 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("preflight must advertise methods")
	}
}
