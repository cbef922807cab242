package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// CompareProfiles assesses how well an analyzed resume matches an analyzed
// job description. A match_score outside [0,100] is a schema violation and
// raises ParseError; it is never clamped.
func (a *Analyzer) CompareProfiles(ctx context.Context, resume *models.ResumeAnalysis, job *models.JobAnalysis) (*models.JobMatch, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume analysis: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job analysis: %w", err)
	}

	raw, err := a.client.GenerateContent(ctx, buildMatchPrompt(string(resumeJSON), string(jobJSON)))
	if err != nil {
		return nil, fmt.Errorf("job match: %w", err)
	}

	var result models.JobMatch
	if err := decodeResponse("job match", raw, &result); err != nil {
		return nil, err
	}

	if result.MatchScore < 0 || result.MatchScore > 100 {
		return nil, &models.ParseError{
			Stage: "job match",
			Raw:   raw,
			Cause: fmt.Errorf("match_score %d outside [0,100]", result.MatchScore),
		}
	}
	return &result, nil
}
