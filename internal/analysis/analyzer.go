// Package analysis implements the request/parse stages of the pipeline.
// Each stage builds a prompt embedding the input text and machine-readable
// formatting instructions, submits it to the LLM as a single synchronous
// call, and parses the response against a fixed schema. Malformed output
// fails loudly; there is no silent repair and no retry.
package analysis

import (
	"github.com/wmutahi/ai-resume-tools/internal/llm"
)

// Analyzer runs analysis stages against an LLM client.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}
