// ABOUTME: Static file server for the view directory.
// ABOUTME: "/" maps to index.html; every hit is sent as text/html, misses get a plain 404.
package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// IndexFile is served for the root path.
	IndexFile = "index.html"

	notFoundBody = "404 Not Found"
)

// FileServer serves files below Root.
type FileServer struct {
	Root   string
	logger *zap.Logger
}

// NewFileServer creates a FileServer rooted at root.
func NewFileServer(root string, logger *zap.Logger) *FileServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileServer{Root: root, logger: logger}
}

// Resolve maps a request path to a file below Root. The path is cleaned
// first, so ".." segments cannot climb out of Root.
func (s *FileServer) Resolve(urlPath string) string {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		clean = "/" + IndexFile
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean))
}

func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()
	status := http.StatusOK

	defer func() {
		s.logger.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusMethodNotAllowed
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(status), status)
		return
	}

	file := s.Resolve(r.URL.Path)
	data, err := readRegular(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("read failed", zap.String("request_id", reqID), zap.String("file", file), zap.Error(err))
		}
		status = http.StatusNotFound
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(notFoundBody))
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

// readRegular reads file, refusing directories.
func readRegular(file string) ([]byte, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(file)
}
