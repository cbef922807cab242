package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// CustomizeResume generates customization suggestions from prior resume and
// job analyses, which are serialized to JSON inside the prompt.
func (a *Analyzer) CustomizeResume(ctx context.Context, resume *models.ResumeAnalysis, job *models.JobAnalysis) (*models.ResumeCustomization, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume analysis: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job analysis: %w", err)
	}

	raw, err := a.client.GenerateContent(ctx, buildCustomizationPrompt(string(resumeJSON), string(jobJSON)))
	if err != nil {
		return nil, fmt.Errorf("resume customization: %w", err)
	}

	var result models.ResumeCustomization
	if err := decodeResponse("resume customization", raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RewriteResume produces a customized resume as free text from the original
// resume and the customization suggestions. The output is for a human
// reader and is not schema-validated.
func (a *Analyzer) RewriteResume(ctx context.Context, resumeText string, customization *models.ResumeCustomization) (string, error) {
	customizationJSON, err := json.Marshal(customization)
	if err != nil {
		return "", fmt.Errorf("failed to marshal customization: %w", err)
	}

	text, err := a.client.GenerateContent(ctx, buildRewritePrompt(resumeText, string(customizationJSON)))
	if err != nil {
		return "", fmt.Errorf("resume rewrite: %w", err)
	}
	return text, nil
}
