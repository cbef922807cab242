// Package pipeline composes analysis stages into the four user-facing
// operations: analyze, customize, cover letter, and match. Each operation
// is a fixed sequence of stage calls with no branching beyond input
// validation. Stages run strictly sequentially because every later stage
// consumes an earlier stage's output.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/wmutahi/ai-resume-tools/internal/analysis"
	"github.com/wmutahi/ai-resume-tools/internal/document"
	"github.com/wmutahi/ai-resume-tools/internal/llm"
	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// Document kinds accepted by AnalyzeDocument.
const (
	DocumentResume = "resume"
	DocumentJob    = "job"
)

// ProgressCallback is called with a short status message as an operation
// moves between stages.
type ProgressCallback func(message string)

// Agent orchestrates the document-analysis pipeline. Results are created
// fresh per request and discarded after formatting; the agent holds no
// cross-request state beyond the LLM client.
type Agent struct {
	analyzer *analysis.Analyzer
	client   llm.Client

	mu         sync.RWMutex
	progressCb ProgressCallback
}

// NewAgent creates an agent backed by client.
func NewAgent(client llm.Client) *Agent {
	return &Agent{
		analyzer: analysis.NewAnalyzer(client),
		client:   client,
	}
}

// SetProgressCallback sets the progress callback function.
func (a *Agent) SetProgressCallback(cb ProgressCallback) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.progressCb = cb
}

func (a *Agent) reportProgress(message string) {
	a.mu.RLock()
	cb := a.progressCb
	a.mu.RUnlock()

	if cb != nil {
		cb(message)
	}
}

// Close releases the underlying LLM client.
func (a *Agent) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// AnalyzeDocument loads the document at path, runs the matching analysis
// stage, and returns the structured result serialized as indented JSON.
// kind must be "resume" or "job".
func (a *Agent) AnalyzeDocument(ctx context.Context, path, kind string) (string, error) {
	var result any

	switch strings.ToLower(kind) {
	case DocumentResume:
		text, err := document.Load(path)
		if err != nil {
			return "", err
		}
		log.Printf("Analyzing resume %s", path)
		a.reportProgress("Analyzing resume...")
		result, err = a.analyzer.AnalyzeResume(ctx, text)
		if err != nil {
			return "", err
		}
	case DocumentJob:
		text, err := document.Load(path)
		if err != nil {
			return "", err
		}
		log.Printf("Analyzing job description %s", path)
		a.reportProgress("Analyzing job description...")
		result, err = a.analyzer.AnalyzeJob(ctx, text)
		if err != nil {
			return "", err
		}
	default:
		return "", &models.UnsupportedInputError{Field: "type", Reason: fmt.Sprintf("must be %q or %q, got %q", DocumentResume, DocumentJob, kind)}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return string(out), nil
}

// analyzeBoth loads and analyzes a resume and a job description, the
// common prefix of the customize, cover-letter, and match operations.
func (a *Agent) analyzeBoth(ctx context.Context, resumePath, jobPath string) (*models.ResumeAnalysis, *models.JobAnalysis, string, error) {
	resumeText, err := document.Load(resumePath)
	if err != nil {
		return nil, nil, "", err
	}
	jobText, err := document.Load(jobPath)
	if err != nil {
		return nil, nil, "", err
	}

	log.Printf("Analyzing resume %s", resumePath)
	a.reportProgress("Analyzing resume...")
	resumeAnalysis, err := a.analyzer.AnalyzeResume(ctx, resumeText)
	if err != nil {
		return nil, nil, "", err
	}

	log.Printf("Analyzing job description %s", jobPath)
	a.reportProgress("Analyzing job description...")
	jobAnalysis, err := a.analyzer.AnalyzeJob(ctx, jobText)
	if err != nil {
		return nil, nil, "", err
	}

	return resumeAnalysis, jobAnalysis, resumeText, nil
}

// CustomizeResume analyzes both documents, generates customization
// suggestions, and rewrites the resume accordingly. Returns the customized
// resume text; nothing is written on failure.
func (a *Agent) CustomizeResume(ctx context.Context, resumePath, jobPath string) (string, error) {
	resumeAnalysis, jobAnalysis, resumeText, err := a.analyzeBoth(ctx, resumePath, jobPath)
	if err != nil {
		return "", err
	}

	a.reportProgress("Generating customization suggestions...")
	customization, err := a.analyzer.CustomizeResume(ctx, resumeAnalysis, jobAnalysis)
	if err != nil {
		return "", err
	}

	a.reportProgress("Customizing resume...")
	return a.analyzer.RewriteResume(ctx, resumeText, customization)
}

// SuggestCustomizations analyzes both documents and returns the raw
// customization suggestions without rewriting the resume.
func (a *Agent) SuggestCustomizations(ctx context.Context, resumePath, jobPath string) (*models.ResumeCustomization, error) {
	resumeAnalysis, jobAnalysis, _, err := a.analyzeBoth(ctx, resumePath, jobPath)
	if err != nil {
		return nil, err
	}

	a.reportProgress("Generating customization suggestions...")
	return a.analyzer.CustomizeResume(ctx, resumeAnalysis, jobAnalysis)
}

// GenerateCoverLetter analyzes both documents and generates a cover letter.
// Blank names fall back to literal defaults before prompting.
func (a *Agent) GenerateCoverLetter(ctx context.Context, resumePath, jobPath, candidateName, companyName string) (string, error) {
	resumeAnalysis, jobAnalysis, _, err := a.analyzeBoth(ctx, resumePath, jobPath)
	if err != nil {
		return "", err
	}

	a.reportProgress("Generating cover letter...")
	return a.analyzer.GenerateCoverLetter(ctx, resumeAnalysis, jobAnalysis, candidateName, companyName)
}

// CompareResumeToJob analyzes both documents and computes a detailed match
// assessment with a numeric score.
func (a *Agent) CompareResumeToJob(ctx context.Context, resumePath, jobPath string) (*models.JobMatch, error) {
	resumeAnalysis, jobAnalysis, _, err := a.analyzeBoth(ctx, resumePath, jobPath)
	if err != nil {
		return nil, err
	}

	a.reportProgress("Analyzing job match...")
	return a.analyzer.CompareProfiles(ctx, resumeAnalysis, jobAnalysis)
}

// SaveResult writes generated content to outputPath and returns a status
// message. A write failure is surfaced after generation succeeded, so the
// caller may retry with a different path.
func (a *Agent) SaveResult(content, outputPath string) (string, error) {
	if err := document.Save(content, outputPath); err != nil {
		return "", err
	}
	log.Printf("Document saved to %s", outputPath)
	return fmt.Sprintf("Document saved to %s", outputPath), nil
}
