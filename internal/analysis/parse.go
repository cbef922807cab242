package analysis

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/wmutahi/ai-resume-tools/internal/llm"
	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// decodeResponse strips known code-fence wrappers from a raw model
// response and decodes the remainder as JSON into v. On failure the raw
// response is logged for diagnosis and returned inside a ParseError.
func decodeResponse(stage, raw string, v any) error {
	cleaned := llm.CleanJSONBlock(raw)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(v); err != nil {
		log.Printf("%s: unparseable model response: %s", stage, raw)
		return &models.ParseError{Stage: stage, Raw: raw, Cause: err}
	}
	return nil
}
