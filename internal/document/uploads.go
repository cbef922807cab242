package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadStore writes uploaded documents to uniquely-pathed locations so
// concurrent requests never share files. Each upload lives in its own
// directory and is removed after the pipeline run that consumed it.
type UploadStore struct {
	baseDir string
}

// NewUploadStore creates a store rooted at baseDir. An empty baseDir uses
// the system temp directory.
func NewUploadStore(baseDir string) *UploadStore {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &UploadStore{baseDir: baseDir}
}

// Save writes content under a fresh unique directory, keeping the original
// filename so extension-based format detection still works. Returns the
// path of the saved file.
func (s *UploadStore) Save(filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, nil
}

// SaveText writes pasted text (e.g. a job description entered in a form)
// to a uniquely-pathed .txt file.
func (s *UploadStore) SaveText(name, text string) (string, error) {
	dir := filepath.Join(s.baseDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}
	return path, nil
}

// Remove deletes a saved upload along with its unique directory.
func (s *UploadStore) Remove(path string) {
	if path == "" {
		return
	}
	os.RemoveAll(filepath.Dir(path))
}
