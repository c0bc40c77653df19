package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/types"
)

const roadTender = "Bidders must have CIDB Grade 7 certification and at least 5 years experience " +
	"in road construction within Gauteng. The closing date for submissions is 15 March 2026."

func testServer(t *testing.T) *Server {
	t.Helper()
	log := zap.NewNop()
	s, err := New(Config{Port: 0}, engine.NewDefault(log), log)
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func validProfile() types.CompanyProfile {
	return types.CompanyProfile{
		CompanyName:     "Mokoena Civils",
		IndustrySector:  "Construction",
		Certifications:  map[string]string{"CIDB": "Grade 7"},
		YearsExperience: 8,
		Regions:         []string{"Gauteng"},
	}
}

func TestHealth_NoDatabase(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body, "database")
}

func TestClassify(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/classify", analyzeRequest{Text: roadTender})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Construction", body["industry_sector"])
}

func TestComplexity(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/complexity", analyzeRequest{Text: roadTender})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, body["complexity_score"], 0)
	assert.LessOrEqual(t, body["complexity_score"], 100)
}

func TestSummarize(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/summarize", analyzeRequest{Text: roadTender, MaxLength: 120})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["summary"])
}

func TestExtract(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/extract", analyzeRequest{Text: roadTender})

	require.Equal(t, http.StatusOK, rec.Code)
	var req types.TenderRequirements
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
	assert.Equal(t, 5, req.MinExperienceYears)
	assert.Equal(t, []string{"Gauteng"}, req.RequiredRegions)
}

func TestExtract_HTMLPayload(t *testing.T) {
	s := testServer(t)

	html := "<html><body><p>Bidders need 5 years experience in Gauteng.</p></body></html>"
	rec := postJSON(t, s, "/extract", analyzeRequest{Text: html})

	require.Equal(t, http.StatusOK, rec.Code)
	var req types.TenderRequirements
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
	assert.Equal(t, 5, req.MinExperienceYears)
}

func TestAnalyze(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/analyze", analyzeRequest{Title: "Road works", Text: roadTender})

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Construction", result.IndustrySector)
	assert.Equal(t, "Procurement of Road works", result.KeyPoints.Objective)
}

func TestScore_WithText(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/score", scoreRequest{Profile: validProfile(), Text: roadTender})

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.ScoringResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.SuitabilityScore, 0.0)
	assert.LessOrEqual(t, result.SuitabilityScore, 100.0)
	assert.True(t, result.ChecklistMet("Has CIDB certification"))
}

func TestScore_WithRequirements(t *testing.T) {
	s := testServer(t)

	req := types.DefaultRequirements()
	req.MinExperienceYears = 5
	rec := postJSON(t, s, "/score", scoreRequest{Profile: validProfile(), Requirements: &req})

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.ScoringResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 100.0, result.Breakdown.Experience)
}

func TestScore_RequiresTextOrRequirements(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/score", scoreRequest{Profile: validProfile()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "requirements")
}

func TestScore_InvalidProfile(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/score", scoreRequest{Text: roadTender})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid company profile")
}

func TestScoreBatch(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/score/batch", batchScoreRequest{
		Profile: validProfile(),
		Tenders: []engine.TenderText{
			{Ref: "TDR-001", Title: "Road works", Text: roadTender},
			{Ref: "TDR-002", Title: "Cleaning", Text: "Office cleaning services in Limpopo."},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Scores []engine.BatchScore `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Scores, 2)
	assert.Equal(t, "TDR-001", body.Scores[0].Ref)
	assert.Equal(t, "TDR-002", body.Scores[1].Ref)
}

func TestScoreBatch_EmptyTenders(t *testing.T) {
	s := testServer(t)

	rec := postJSON(t, s, "/score/batch", batchScoreRequest{Profile: validProfile()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListScores_UnavailableWithoutDatabase(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/companies/COMP-1/scores", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON body")
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestParseQueryInt(t *testing.T) {
	makeReq := func(query string) *http.Request {
		return httptest.NewRequest(http.MethodGet, "/companies/x/scores"+query, nil)
	}

	assert.Equal(t, 50, parseQueryInt(makeReq(""), "limit", 50, 100))
	assert.Equal(t, 10, parseQueryInt(makeReq("?limit=10"), "limit", 50, 100))
	assert.Equal(t, 100, parseQueryInt(makeReq("?limit=500"), "limit", 50, 100))
	assert.Equal(t, 50, parseQueryInt(makeReq("?limit=abc"), "limit", 50, 100))
	assert.Equal(t, 50, parseQueryInt(makeReq("?limit=-3"), "limit", 50, 100))
}
