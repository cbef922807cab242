package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestUploadStore_Save tests that uploads land in unique directories with
// their original filename intact
func TestUploadStore_Save(t *testing.T) {
	store := NewUploadStore(t.TempDir())

	first, err := store.Save("resume.docx", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	second, err := store.Save("resume.docx", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if first == second {
		t.Errorf("two uploads of the same filename share a path: %s", first)
	}
	if filepath.Base(first) != "resume.docx" {
		t.Errorf("filename = %q, want resume.docx", filepath.Base(first))
	}

	data, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("failed to read upload: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

// TestUploadStore_SaveText tests pasted-text storage
func TestUploadStore_SaveText(t *testing.T) {
	store := NewUploadStore(t.TempDir())

	path, err := store.SaveText("job_description", "Backend Engineer at Acme")
	if err != nil {
		t.Fatalf("SaveText() unexpected error: %v", err)
	}
	if filepath.Base(path) != "job_description.txt" {
		t.Errorf("filename = %q, want job_description.txt", filepath.Base(path))
	}

	text, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if text != "Backend Engineer at Acme" {
		t.Errorf("content = %q", text)
	}
}

// TestUploadStore_Remove tests that removal deletes the whole per-upload
// directory
func TestUploadStore_Remove(t *testing.T) {
	store := NewUploadStore(t.TempDir())

	path, err := store.Save("resume.txt", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	store.Remove(path)

	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Errorf("upload directory still exists after Remove")
	}

	// Removing an empty path is a no-op.
	store.Remove("")
}
