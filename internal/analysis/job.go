package analysis

import (
	"context"
	"fmt"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// AnalyzeJob extracts structured information from a job description.
// Fields the model returns as bare strings instead of lists are accepted
// and normalized to one-element lists.
func (a *Analyzer) AnalyzeJob(ctx context.Context, jobText string) (*models.JobAnalysis, error) {
	raw, err := a.client.GenerateContent(ctx, buildJobPrompt(jobText))
	if err != nil {
		return nil, fmt.Errorf("job analysis: %w", err)
	}

	var result models.JobAnalysis
	if err := decodeResponse("job analysis", raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
