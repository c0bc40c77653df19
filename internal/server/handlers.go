package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/ingestion"
	"github.com/thabo/tender-insight/internal/types"
)

// analyzeRequest carries tender text for the analysis endpoints. Text may be
// plain or an HTML payload from the document pipeline.
type analyzeRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	MaxLength int    `json:"max_length,omitempty"`
}

// scoreRequest carries a profile plus either pre-extracted requirements or
// raw tender text to extract from.
type scoreRequest struct {
	Profile      types.CompanyProfile      `json:"profile"`
	Requirements *types.TenderRequirements `json:"requirements,omitempty"`
	Title        string                    `json:"title,omitempty"`
	Text         string                    `json:"text,omitempty"`
	TenderRef    string                    `json:"tender_ref,omitempty"`
	CompanyRef   string                    `json:"company_ref,omitempty"`
}

type batchScoreRequest struct {
	Profile types.CompanyProfile `json:"profile"`
	Tenders []engine.TenderText  `json:"tenders"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	text := ingestion.Normalize(req.Text)
	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeTender(text, req.Title))
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	sector := s.engine.ClassifyIndustry(ingestion.Normalize(req.Text))
	s.jsonResponse(w, http.StatusOK, map[string]string{"industry_sector": sector})
}

func (s *Server) handleComplexity(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	score := s.engine.EstimateComplexity(ingestion.Normalize(req.Text))
	s.jsonResponse(w, http.StatusOK, map[string]int{"complexity_score": score})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	maxLen := req.MaxLength
	if maxLen <= 0 {
		maxLen = engine.DefaultSummaryLength
	}
	summary := s.engine.Summarize(ingestion.Normalize(req.Text), maxLen)
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	requirements := s.engine.ExtractRequirements(ingestion.Normalize(req.Text), req.Title)
	s.jsonResponse(w, http.StatusOK, requirements)
}

// handleScore evaluates a profile. When the request carries raw text instead
// of requirements, extraction runs first. With history references and a
// configured database, the result is also persisted.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company profile: "+err.Error())
		return
	}

	requirements := types.DefaultRequirements()
	switch {
	case req.Requirements != nil:
		requirements = *req.Requirements
	case req.Text != "":
		requirements = s.engine.ExtractRequirements(ingestion.Normalize(req.Text), req.Title)
	default:
		s.errorResponse(w, http.StatusBadRequest, "Either 'requirements' or 'text' is required")
		return
	}

	result := s.engine.ScoreSuitability(req.Profile, requirements)

	if s.db != nil && req.TenderRef != "" && req.CompanyRef != "" {
		if _, err := s.db.SaveScore(r.Context(), req.TenderRef, req.CompanyRef, result); err != nil {
			// history is best-effort; the scoring result is still valid
			s.log.Warn("failed to persist scoring result", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req batchScoreRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company profile: "+err.Error())
		return
	}
	if len(req.Tenders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one tender is required")
		return
	}

	results, err := s.engine.ScoreBatch(r.Context(), req.Profile, req.Tenders)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Batch scoring failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"scores": results})
}

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Scoring history is not configured")
		return
	}
	companyRef := r.PathValue("ref")
	limit := parseQueryInt(r, "limit", 50, 100)

	records, err := s.db.ListScoresByCompany(r.Context(), companyRef, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company_ref": companyRef,
		"scores":      records,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// decode unmarshals the request body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
