// Package document reads and writes the input and output documents of the
// analysis pipeline: plain text files and Word documents.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// Load reads a document from disk and returns its text content.
// Word documents (.docx) are flattened to paragraph texts joined by
// newlines; everything else is read verbatim as UTF-8 text. Unknown binary
// formats passed as plain files yield garbage text rather than an error.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &models.FileNotFoundError{Path: path}
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return loadWordDocument(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
