package document

import (
	"os"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// Save writes generated content to path as UTF-8 text. Failures are
// reported as OutputWriteError so callers can prompt for a new path without
// discarding the generated content.
func Save(content, path string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &models.OutputWriteError{Path: path, Cause: err}
	}
	return nil
}
