package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStaticMiddleware(t *testing.T) {
	staticDir := t.TempDir()
	indexPath := filepath.Join(staticDir, "index.html")
	if err := os.WriteFile(indexPath, []byte("<html>landing</html>"), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('hi')"), 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	apiInvoked := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiInvoked = true
		w.WriteHeader(http.StatusOK)
	})

	handler := StaticMiddleware(next, staticDir, indexPath)

	t.Run("root serves landing page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "landing") {
			t.Fatalf("expected landing page body, got %q", rr.Body.String())
		}
	})

	t.Run("static asset served verbatim", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if rr.Body.String() != "console.log('hi')" {
			t.Fatalf("expected asset body, got %q", rr.Body.String())
		}
	})

	t.Run("missing static asset 404s", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
	})

	t.Run("api passes through", func(t *testing.T) {
		apiInvoked = false
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/allocate-investment", nil))

		if !apiInvoked {
			t.Fatal("expected next handler to be invoked")
		}
	})

	t.Run("unknown path 404s", func(t *testing.T) {
		apiInvoked = false
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
		if apiInvoked {
			t.Fatal("next handler should not be invoked for unknown paths")
		}
	})
}
