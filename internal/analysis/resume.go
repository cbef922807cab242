package analysis

import (
	"context"
	"fmt"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// AnalyzeResume extracts structured information from resume text.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error) {
	raw, err := a.client.GenerateContent(ctx, buildResumePrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("resume analysis: %w", err)
	}

	var result models.ResumeAnalysis
	if err := decodeResponse("resume analysis", raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
