// ABOUTME: Tests for the static file server.
// ABOUTME: Covers index mapping, 404 fallback, method filtering, and path cleaning.
package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "view")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>daylog</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "css", "site.css"), []byte("body{}"), 0o644))
	// Sits next to the root; must never be reachable.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "secret.txt"), []byte("secret"), 0o644))
	return root
}

func TestFileServer(t *testing.T) {
	srv := NewFileServer(setupRoot(t), zap.NewNop())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"root serves index", http.MethodGet, "/", http.StatusOK, "<h1>daylog</h1>"},
		{"explicit index", http.MethodGet, "/index.html", http.StatusOK, "<h1>daylog</h1>"},
		{"nested file", http.MethodGet, "/css/site.css", http.StatusOK, "body{}"},
		{"missing file", http.MethodGet, "/nope.html", http.StatusNotFound, "404 Not Found"},
		{"directory", http.MethodGet, "/css", http.StatusNotFound, "404 Not Found"},
		{"traversal stays in root", http.MethodGet, "/../secret.txt", http.StatusNotFound, "404 Not Found"},
		{"encoded traversal", http.MethodGet, "/%2e%2e/secret.txt", http.StatusNotFound, "404 Not Found"},
		{"head has no body", http.MethodHead, "/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestFileServerRejectsOtherMethods(t *testing.T) {
	srv := NewFileServer(setupRoot(t), nil)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
	}
}

func TestResolve(t *testing.T) {
	srv := NewFileServer("/srv/view", nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", "/srv/view/index.html"},
		{"", "/srv/view/index.html"},
		{"/a/b.html", "/srv/view/a/b.html"},
		{"/a/../b.html", "/srv/view/b.html"},
		{"/../../etc/passwd", "/srv/view/etc/passwd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, srv.Resolve(tt.path), tt.path)
	}
}
