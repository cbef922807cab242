// Package api exposes the analysis pipeline as a browser-facing form API.
// It collects inputs, invokes the pipeline, and renders results; all
// intelligence lives behind the pipeline boundary.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/wmutahi/ai-resume-tools/internal/document"
	"github.com/wmutahi/ai-resume-tools/internal/models"
	"github.com/wmutahi/ai-resume-tools/internal/pipeline"
)

const maxUploadBytes = 32 << 20 // 32 MB

// Server handles HTTP requests.
type Server struct {
	agent   *pipeline.Agent
	uploads *document.UploadStore
}

// NewServer creates a new API server.
func NewServer(agent *pipeline.Agent, uploads *document.UploadStore) *Server {
	return &Server{
		agent:   agent,
		uploads: uploads,
	}
}

// Router returns the HTTP router.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /customize", s.handleCustomize)
	mux.HandleFunc("POST /cover-letter", s.handleCoverLetter)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	return s.loggingMiddleware(mux)
}

// handleRoot provides API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service": "AI Resume Tools",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /analyze":      "Analyze a resume or job description",
			"POST /customize":    "Customize a resume for a job",
			"POST /cover-letter": "Generate a cover letter",
			"POST /match":        "Compute a resume/job match score",
			"GET /health":        "Health check",
		},
	})
}

// handleHealth provides a health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

// handleAnalyze analyzes a single uploaded document. The document may be a
// file upload ("document") or, for job descriptions, pasted text ("text").
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	kind := r.FormValue("type")
	if kind == "" {
		s.respondError(w, http.StatusBadRequest, "type is required (resume or job)")
		return
	}

	path, err := s.saveInput(r, "document", "text", "job_description")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer s.uploads.Remove(path)

	result, err := s.agent.AnalyzeDocument(r.Context(), path, kind)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"analysis": json.RawMessage(result),
	})
}

// handleCustomize runs the full customization pipeline and returns the
// rewritten resume text.
func (s *Server) handleCustomize(w http.ResponseWriter, r *http.Request) {
	resumePath, jobPath, ok := s.parseResumeAndJob(w, r)
	if !ok {
		return
	}
	defer s.uploads.Remove(resumePath)
	defer s.uploads.Remove(jobPath)

	customized, err := s.agent.CustomizeResume(r.Context(), resumePath, jobPath)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"customized_resume": customized,
	})
}

// handleCoverLetter generates a cover letter. Blank candidate and company
// names fall back to defaults inside the pipeline.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	resumePath, jobPath, ok := s.parseResumeAndJob(w, r)
	if !ok {
		return
	}
	defer s.uploads.Remove(resumePath)
	defer s.uploads.Remove(jobPath)

	letter, err := s.agent.GenerateCoverLetter(r.Context(), resumePath, jobPath, r.FormValue("candidate_name"), r.FormValue("company_name"))
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"cover_letter": letter,
	})
}

// handleMatch computes the match assessment and returns both the
// structured result and a rendered report.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	resumePath, jobPath, ok := s.parseResumeAndJob(w, r)
	if !ok {
		return
	}
	defer s.uploads.Remove(resumePath)
	defer s.uploads.Remove(jobPath)

	match, err := s.agent.CompareResumeToJob(r.Context(), resumePath, jobPath)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"match_score": match.MatchScore,
		"match":       match,
		"report":      pipeline.FormatJobMatch(match),
	})
}

// parseResumeAndJob validates and stores the resume upload and the job
// description (file upload or pasted text) shared by the customize,
// cover-letter, and match endpoints. On failure it writes the error
// response and returns ok=false.
func (s *Server) parseResumeAndJob(w http.ResponseWriter, r *http.Request) (resumePath, jobPath string, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return "", "", false
	}

	resumePath, err := s.saveUpload(r, "resume")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}

	jobPath, err = s.saveInput(r, "job", "job_description")
	if err != nil {
		s.uploads.Remove(resumePath)
		s.respondError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}

	return resumePath, jobPath, true
}

// saveUpload stores a required file upload and returns its temp path.
func (s *Server) saveUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s file is required", field)
	}
	defer file.Close()

	return s.storeFile(header, file)
}

// saveInput stores either a file upload (fileField) or pasted text from
// the first non-empty text field, preferring the upload.
func (s *Server) saveInput(r *http.Request, fileField string, textFields ...string) (string, error) {
	if file, header, err := r.FormFile(fileField); err == nil {
		defer file.Close()
		return s.storeFile(header, file)
	}

	for _, field := range textFields {
		if text := r.FormValue(field); text != "" {
			return s.uploads.SaveText(fileField, text)
		}
	}

	return "", fmt.Errorf("either a %s file or pasted text is required", fileField)
}

func (s *Server) storeFile(header *multipart.FileHeader, file multipart.File) (string, error) {
	path, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		return "", fmt.Errorf("failed to save upload %s: %w", header.Filename, err)
	}
	log.Printf("Saved upload: %s", header.Filename)
	return path, nil
}

// respondPipelineError maps the pipeline error taxonomy onto HTTP status
// codes. Parse and transport failures are upstream problems, not client
// mistakes.
func (s *Server) respondPipelineError(w http.ResponseWriter, err error) {
	var (
		notFound    *models.FileNotFoundError
		unsupported *models.UnsupportedInputError
		parseErr    *models.ParseError
		transport   *models.TransportError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &unsupported):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &parseErr), errors.As(err, &transport):
		s.respondError(w, http.StatusBadGateway, err.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// respondError sends an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
