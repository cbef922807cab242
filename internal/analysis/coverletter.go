package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// Fallbacks used when the caller leaves the name fields blank.
const (
	DefaultCandidateName = "Candidate"
	DefaultCompanyName   = "Company"
)

// GenerateCoverLetter produces a cover letter (about one page) from prior
// resume and job analyses. The output is free text for a human reader and
// is returned as-is, not schema-validated.
func (a *Analyzer) GenerateCoverLetter(ctx context.Context, resume *models.ResumeAnalysis, job *models.JobAnalysis, candidateName, companyName string) (string, error) {
	if strings.TrimSpace(candidateName) == "" {
		candidateName = DefaultCandidateName
	}
	if strings.TrimSpace(companyName) == "" {
		companyName = DefaultCompanyName
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("failed to marshal resume analysis: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job analysis: %w", err)
	}

	text, err := a.client.GenerateContent(ctx, buildCoverLetterPrompt(string(resumeJSON), string(jobJSON), candidateName, companyName))
	if err != nil {
		return "", fmt.Errorf("cover letter generation: %w", err)
	}
	return text, nil
}
