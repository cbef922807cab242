package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// stubClient replays canned responses in order and counts calls, so tests
// can assert both pipeline output and how many LLM round trips happened.
type stubClient struct {
	responses []string
	calls     int
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if s.calls >= len(s.responses) {
		return "", &models.TransportError{Op: "generate content", Cause: context.Canceled}
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

func (s *stubClient) Close() error { return nil }

const (
	stubResumeAnalysis = `{"skills": ["Go", "SQL"], "experience": [{"title": "Engineer", "company": "Acme"}], "education": [], "summary": "Backend engineer."}`
	stubJobAnalysis    = `{"required_skills": ["Go", "Kubernetes"], "preferred_skills": [], "responsibilities": ["Build services"], "company_values": [], "keywords": ["backend"]}`
	stubJobMatch       = `{"match_score": 72, "matching_skills": ["Go"], "missing_skills": ["Kubernetes"], "experience_alignment": "Good", "recommendations": ["Add Kubernetes projects"], "strengths": ["Go depth"], "weaknesses": ["No orchestration experience"]}`
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeDocument_Resume(t *testing.T) {
	client := &stubClient{responses: []string{stubResumeAnalysis}}
	agent := NewAgent(client)

	resumePath := writeFixture(t, "resume.txt", "Jane Doe\nSkills: Go, SQL")

	out, err := agent.AnalyzeDocument(context.Background(), resumePath, DocumentResume)
	require.NoError(t, err)

	assert.Contains(t, out, `"skills"`)
	assert.Contains(t, out, `"Go"`)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeDocument_UnsupportedKind(t *testing.T) {
	client := &stubClient{responses: []string{stubResumeAnalysis}}
	agent := NewAgent(client)

	resumePath := writeFixture(t, "resume.txt", "Jane Doe")

	_, err := agent.AnalyzeDocument(context.Background(), resumePath, "portfolio")
	require.Error(t, err)

	var unsupported *models.UnsupportedInputError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 0, client.calls, "invalid kind must be rejected before any LLM call")
}

func TestAnalyzeDocument_MissingFileSkipsLLM(t *testing.T) {
	client := &stubClient{responses: []string{stubResumeAnalysis}}
	agent := NewAgent(client)

	_, err := agent.AnalyzeDocument(context.Background(), "/nonexistent/resume.docx", DocumentResume)
	require.Error(t, err)

	var notFound *models.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, client.calls, "missing input must abort before any LLM call")
}

func TestCompareResumeToJob_Deterministic(t *testing.T) {
	resumeText := "Jane Doe\nSkills: Go, SQL"
	jobText := "Backend Engineer\nRequired: Go, Kubernetes"

	want := &models.JobMatch{
		MatchScore:          72,
		MatchingSkills:      []string{"Go"},
		MissingSkills:       []string{"Kubernetes"},
		ExperienceAlignment: "Good",
		Recommendations:     []string{"Add Kubernetes projects"},
		Strengths:           []string{"Go depth"},
		Weaknesses:          []string{"No orchestration experience"},
	}

	// Same inputs and same stubbed responses must produce the identical
	// result on every run.
	for i := 0; i < 2; i++ {
		client := &stubClient{responses: []string{stubResumeAnalysis, stubJobAnalysis, stubJobMatch}}
		agent := NewAgent(client)

		resumePath := writeFixture(t, "resume.txt", resumeText)
		jobPath := writeFixture(t, "job.txt", jobText)

		got, err := agent.CompareResumeToJob(context.Background(), resumePath, jobPath)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 3, client.calls, "match runs exactly three stages")
	}
}

func TestCompareResumeToJob_MissingJobFile(t *testing.T) {
	client := &stubClient{responses: []string{stubResumeAnalysis, stubJobAnalysis, stubJobMatch}}
	agent := NewAgent(client)

	resumePath := writeFixture(t, "resume.txt", "Jane Doe")

	_, err := agent.CompareResumeToJob(context.Background(), resumePath, "/nonexistent/job.txt")
	require.Error(t, err)

	var notFound *models.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, client.calls, "both inputs are loaded before the first LLM call")
}

func TestCustomizeResume_FullPipeline(t *testing.T) {
	customization := `{"highlighted_skills": ["Go"], "experience_emphasize": {}, "suggested_additions": [], "suggested_removals": []}`
	rewritten := "JANE DOE\nGo Engineer focused on backend services."

	client := &stubClient{responses: []string{stubResumeAnalysis, stubJobAnalysis, customization, rewritten}}
	agent := NewAgent(client)

	var progress []string
	agent.SetProgressCallback(func(message string) {
		progress = append(progress, message)
	})

	resumePath := writeFixture(t, "resume.txt", "Jane Doe\nSkills: Go, SQL")
	jobPath := writeFixture(t, "job.txt", "Backend Engineer")

	got, err := agent.CustomizeResume(context.Background(), resumePath, jobPath)
	require.NoError(t, err)

	assert.Equal(t, rewritten, got)
	assert.Equal(t, 4, client.calls, "customize runs exactly four stages")
	assert.Equal(t, []string{
		"Analyzing resume...",
		"Analyzing job description...",
		"Generating customization suggestions...",
		"Customizing resume...",
	}, progress)
}

func TestGenerateCoverLetter(t *testing.T) {
	letter := "Dear Hiring Manager,\n\nI am excited to apply..."
	client := &stubClient{responses: []string{stubResumeAnalysis, stubJobAnalysis, letter}}
	agent := NewAgent(client)

	resumePath := writeFixture(t, "resume.txt", "Jane Doe")
	jobPath := writeFixture(t, "job.txt", "Backend Engineer at Acme")

	got, err := agent.GenerateCoverLetter(context.Background(), resumePath, jobPath, "Jane Doe", "Acme")
	require.NoError(t, err)
	assert.Equal(t, letter, got)
	assert.Equal(t, 3, client.calls)
}

func TestSaveResult(t *testing.T) {
	agent := NewAgent(&stubClient{})

	outputPath := filepath.Join(t.TempDir(), "out.txt")
	status, err := agent.SaveResult("customized resume text", outputPath)
	require.NoError(t, err)
	assert.Equal(t, "Document saved to "+outputPath, status)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "customized resume text", string(data))
}

func TestSaveResult_WriteFailure(t *testing.T) {
	agent := NewAgent(&stubClient{})

	_, err := agent.SaveResult("content", filepath.Join(t.TempDir(), "missing", "dir", "out.txt"))
	require.Error(t, err)

	var writeErr *models.OutputWriteError
	assert.ErrorAs(t, err, &writeErr)
}
