package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/bootstrap"
	"vetpath-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		LLMProvider:     "none",
		SeedCatalog:     true,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/health", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload struct {
		Status    string `json:"status"`
		AIEnabled bool   `json:"ai_enabled"`
		Database  string `json:"database"`
	}
	decodeBody(t, resp, &payload)

	if payload.Status != "healthy" {
		t.Fatalf("expected status healthy, got %q", payload.Status)
	}
	if payload.AIEnabled {
		t.Fatalf("expected ai_enabled false without an LLM provider")
	}
	if payload.Database != "memory" {
		t.Fatalf("expected database memory, got %q", payload.Database)
	}

	respAlias := doJSON(t, app.Router, http.MethodGet, "/api/health", nil)
	if respAlias.Code != http.StatusOK {
		t.Fatalf("expected unversioned alias to respond 200, got %d", respAlias.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/metrics", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"parse_requests_total", "match_requests_total", "match_duration_ms"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected metrics output to contain %s", name)
		}
	}
}

func TestCatalogEndpoints(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/careers/13-1081.00", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var record struct {
		OccupationCode  string   `json:"occupationCode"`
		OccupationTitle string   `json:"occupationTitle"`
		MedianWage      *int     `json:"medianWage"`
		RequiredSkills  []string `json:"requiredSkills"`
	}
	decodeBody(t, resp, &record)
	if record.OccupationTitle != "Logistics Analyst" {
		t.Fatalf("expected Logistics Analyst, got %q", record.OccupationTitle)
	}
	if record.MedianWage == nil || *record.MedianWage != 77520 {
		t.Fatalf("unexpected median wage: %v", record.MedianWage)
	}
	if len(record.RequiredSkills) == 0 {
		t.Fatalf("expected required skills")
	}

	respMissing := doJSON(t, app.Router, http.MethodGet, "/api/v1/careers/99-9999.99", nil)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respMissing.Code)
	}
	var errPayload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, respMissing, &errPayload)
	if errPayload.Error.Code != "not_found" {
		t.Fatalf("expected error code not_found, got %q", errPayload.Error.Code)
	}

	respList := doJSON(t, app.Router, http.MethodGet, "/api/v1/occupations?industry=logistics", nil)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var rows []struct {
		OccupationCode string `json:"occupationCode"`
		Industry       string `json:"industry"`
	}
	decodeBody(t, respList, &rows)
	if len(rows) == 0 {
		t.Fatalf("expected logistics occupations")
	}
	for _, row := range rows {
		if row.Industry != "logistics" {
			t.Fatalf("expected industry logistics, got %q", row.Industry)
		}
	}

	respIndustries := doJSON(t, app.Router, http.MethodGet, "/api/v1/industries", nil)
	if respIndustries.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respIndustries.Code)
	}
	var industries struct {
		Industries []string `json:"industries"`
	}
	decodeBody(t, respIndustries, &industries)
	found := false
	for _, ind := range industries.Industries {
		if ind == "logistics" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected logistics in industries, got %v", industries.Industries)
	}

	respMOS := doJSON(t, app.Router, http.MethodGet, "/api/v1/mos-codes?branch=Army", nil)
	if respMOS.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respMOS.Code)
	}
	var mosRows []struct {
		MOSCode string `json:"mosCode"`
		Branch  string `json:"branch"`
	}
	decodeBody(t, respMOS, &mosRows)
	count := 0
	for _, row := range mosRows {
		if row.Branch != "Army" {
			t.Fatalf("expected only Army rows, got %q", row.Branch)
		}
		if row.MOSCode == "92A" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one deduplicated 92A row, got %d", count)
	}
}

func TestParseEndpoint(t *testing.T) {
	app := buildTestApp(t)

	respShort := doJSON(t, app.Router, http.MethodPost, "/api/v1/parse", map[string]any{
		"experience": "short",
	})
	if respShort.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respShort.Code)
	}

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/parse", map[string]any{
		"experience": "Served as a platoon sergeant leading 30 personnel for 8 years, managing logistics and supply chain operations with a Secret clearance.",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Skills struct {
			Leadership *struct {
				Level string `json:"level"`
				Scope string `json:"scope"`
			} `json:"leadership"`
			TechnicalSkills   []string `json:"technicalSkills"`
			YearsExperience   *int     `json:"yearsExperience"`
			SecurityClearance string   `json:"securityClearance"`
		} `json:"skills"`
		RawText string `json:"rawText"`
	}
	decodeBody(t, resp, &payload)

	if payload.Skills.Leadership == nil {
		t.Fatalf("expected leadership to be detected")
	}
	if payload.Skills.YearsExperience == nil || *payload.Skills.YearsExperience != 8 {
		t.Fatalf("unexpected years of experience: %v", payload.Skills.YearsExperience)
	}
	if payload.Skills.SecurityClearance != "Secret" {
		t.Fatalf("expected Secret clearance, got %q", payload.Skills.SecurityClearance)
	}
	if payload.RawText == "" {
		t.Fatalf("expected rawText to echo the input")
	}
}

func TestMatchEndpoints(t *testing.T) {
	app := buildTestApp(t)

	respEmpty := doJSON(t, app.Router, http.MethodPost, "/api/v1/match", map[string]any{
		"skills": map[string]any{},
	})
	if respEmpty.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", respEmpty.Code)
	}

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/match", map[string]any{
		"skills": map[string]any{
			"technicalSkills": []string{"logistics management", "supply chain", "inventory management", "data analysis"},
		},
		"limit": 5,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Matches []struct {
			OccupationCode  string  `json:"occupationCode"`
			SkillMatchScore float64 `json:"skillMatchScore"`
		} `json:"matches"`
		TotalFound int `json:"totalFound"`
	}
	decodeBody(t, resp, &payload)

	if payload.TotalFound == 0 || len(payload.Matches) == 0 {
		t.Fatalf("expected matches, got %d", payload.TotalFound)
	}
	if len(payload.Matches) > 5 {
		t.Fatalf("expected at most 5 matches, got %d", len(payload.Matches))
	}
	if payload.Matches[0].OccupationCode != "13-1081.00" {
		t.Fatalf("expected Logistics Analyst to rank first, got %s", payload.Matches[0].OccupationCode)
	}
	if payload.Matches[0].SkillMatchScore != 50.0 {
		t.Fatalf("expected 50.0 for 4 of 8 skills, got %v", payload.Matches[0].SkillMatchScore)
	}
	for i := 1; i < len(payload.Matches); i++ {
		if payload.Matches[i].SkillMatchScore > payload.Matches[i-1].SkillMatchScore {
			t.Fatalf("matches not sorted by score descending")
		}
	}
}

func TestMatchMOSEndpoint(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/v1/match/mos/92A?branch=Army", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload struct {
		Matches []struct {
			OccupationCode  string  `json:"occupationCode"`
			SkillMatchScore float64 `json:"skillMatchScore"`
		} `json:"matches"`
		TotalFound int    `json:"totalFound"`
		Message    string `json:"message"`
	}
	decodeBody(t, resp, &payload)

	if payload.TotalFound != 3 {
		t.Fatalf("expected 3 crosswalk matches for 92A, got %d", payload.TotalFound)
	}
	if payload.Matches[0].OccupationCode != "13-1081.00" {
		t.Fatalf("expected strongest match first, got %s", payload.Matches[0].OccupationCode)
	}
	if payload.Matches[0].SkillMatchScore != 100.0 {
		t.Fatalf("expected strength 5 to map to 100, got %v", payload.Matches[0].SkillMatchScore)
	}

	respUnknown := doJSON(t, app.Router, http.MethodGet, "/api/v1/match/mos/00Z", nil)
	if respUnknown.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respUnknown.Code)
	}
	var unknown struct {
		TotalFound int    `json:"totalFound"`
		Message    string `json:"message"`
	}
	decodeBody(t, respUnknown, &unknown)
	if unknown.TotalFound != 0 {
		t.Fatalf("expected no matches for unknown MOS, got %d", unknown.TotalFound)
	}
	if !strings.Contains(unknown.Message, "00Z") {
		t.Fatalf("expected guidance message naming the MOS, got %q", unknown.Message)
	}
}

func TestGapsEndpoints(t *testing.T) {
	app := buildTestApp(t)

	respMissing := doJSON(t, app.Router, http.MethodPost, "/api/v1/gaps", map[string]any{
		"veteranSkills":        []string{"logistics management"},
		"targetOccupationCode": "99-9999.99",
	})
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respMissing.Code)
	}

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/gaps", map[string]any{
		"veteranSkills":        []string{"logistics management", "supply chain", "inventory management", "data analysis"},
		"targetOccupationCode": "13-1081.00",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Analysis struct {
			Gaps                 []string `json:"gaps"`
			MatchPercentage      float64  `json:"matchPercentage"`
			EstimatedTimeToReady string   `json:"estimatedTimeToReady"`
			Recommendations      []struct {
				SkillGap      string `json:"skillGap"`
				Certification string `json:"certification"`
			} `json:"recommendations"`
		} `json:"analysis"`
	}
	decodeBody(t, resp, &payload)

	if payload.Analysis.MatchPercentage != 50.0 {
		t.Fatalf("expected match percentage 50.0, got %v", payload.Analysis.MatchPercentage)
	}
	if len(payload.Analysis.Gaps) != 4 {
		t.Fatalf("expected 4 gaps, got %v", payload.Analysis.Gaps)
	}
	if len(payload.Analysis.Recommendations) != len(payload.Analysis.Gaps) {
		t.Fatalf("expected one recommendation per gap")
	}
	if payload.Analysis.EstimatedTimeToReady == "" {
		t.Fatalf("expected an estimated time to ready")
	}
	for _, rec := range payload.Analysis.Recommendations {
		if rec.Certification == "" {
			t.Fatalf("expected a certification for gap %q", rec.SkillGap)
		}
	}
}

func TestReadinessEndpoint(t *testing.T) {
	app := buildTestApp(t)

	respNoSkills := doJSON(t, app.Router, http.MethodGet, "/api/v1/gaps/readiness/13-1081.00", nil)
	if respNoSkills.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without skills, got %d", respNoSkills.Code)
	}

	path := "/api/v1/gaps/readiness/13-1081.00?skills=" +
		"logistics%20management,supply%20chain,inventory%20management,data%20analysis"
	resp := doJSON(t, app.Router, http.MethodGet, path, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		ReadinessScore  float64 `json:"readinessScore"`
		Level           string  `json:"level"`
		Message         string  `json:"message"`
		SkillsMatched   int     `json:"skillsMatched"`
		SkillsRequired  int     `json:"skillsRequired"`
		GapsCount       int     `json:"gapsCount"`
		OccupationTitle string  `json:"occupationTitle"`
	}
	decodeBody(t, resp, &payload)

	if payload.SkillsMatched != 4 || payload.SkillsRequired != 8 {
		t.Fatalf("unexpected matched/required: %d/%d", payload.SkillsMatched, payload.SkillsRequired)
	}
	if payload.GapsCount != 4 {
		t.Fatalf("expected 4 gaps, got %d", payload.GapsCount)
	}
	if payload.OccupationTitle != "Logistics Analyst" {
		t.Fatalf("unexpected occupation title %q", payload.OccupationTitle)
	}
	if payload.Level == "" || payload.Message == "" {
		t.Fatalf("expected level and message to be populated")
	}
}

func TestQuickWinsEndpoint(t *testing.T) {
	app := buildTestApp(t)

	path := "/api/v1/gaps/quick-wins/13-1081.00?skills=logistics%20management"
	resp := doJSON(t, app.Router, http.MethodGet, path, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Recommendations []struct {
			SkillGap      string `json:"skillGap"`
			EstimatedTime string `json:"estimatedTime"`
		} `json:"recommendations"`
		Count int `json:"count"`
	}
	decodeBody(t, resp, &payload)

	if payload.Count == 0 || payload.Count > 3 {
		t.Fatalf("expected 1-3 quick wins, got %d", payload.Count)
	}
	if len(payload.Recommendations) != payload.Count {
		t.Fatalf("count does not match recommendations length")
	}
}

func TestResumeEndpoint(t *testing.T) {
	app := buildTestApp(t)

	respNoJob := doJSON(t, app.Router, http.MethodPost, "/api/v1/resume", map[string]any{
		"profile": map[string]any{"branch": "Army"},
	})
	if respNoJob.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without target job, got %d", respNoJob.Code)
	}

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/resume", map[string]any{
		"profile": map[string]any{
			"branch":         "Army",
			"yearsOfService": 8,
			"rank":           "Staff Sergeant",
		},
		"parsedSkills": map[string]any{
			"technicalSkills": []string{"logistics management", "supply chain"},
			"softSkills":      []string{"communication"},
		},
		"targetJob": "Logistics Analyst",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		ResumeText string `json:"resumeText"`
		Format     string `json:"format"`
	}
	decodeBody(t, resp, &payload)

	if payload.Format != "markdown" {
		t.Fatalf("expected markdown format, got %q", payload.Format)
	}
	for _, section := range []string{"PROFESSIONAL SUMMARY", "CORE COMPETENCIES", "Logistics Analyst"} {
		if !strings.Contains(payload.ResumeText, section) {
			t.Fatalf("expected resume to contain %q", section)
		}
	}
}

func TestSessionsFlow(t *testing.T) {
	app := buildTestApp(t)

	respCreate := doJSON(t, app.Router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"branch":  "Army",
		"mosCode": "92A",
	})
	if respCreate.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", respCreate.Code)
	}
	var session struct {
		ID    string `json:"id"`
		Stage string `json:"stage"`
	}
	decodeBody(t, respCreate, &session)
	if session.ID == "" {
		t.Fatalf("expected session id")
	}
	if session.Stage != "profile" {
		t.Fatalf("expected stage profile, got %q", session.Stage)
	}

	base := "/api/v1/sessions/" + session.ID

	respSkills := doJSON(t, app.Router, http.MethodPut, base+"/skills", map[string]any{
		"technicalSkills": []string{"logistics management"},
	})
	if respSkills.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respSkills.Code)
	}

	// profile -> skills -> matches
	for i := 0; i < 2; i++ {
		respAdvance := doJSON(t, app.Router, http.MethodPost, base+"/advance", nil)
		if respAdvance.Code != http.StatusOK {
			t.Fatalf("advance %d: expected status 200, got %d", i, respAdvance.Code)
		}
	}

	respFrozen := doJSON(t, app.Router, http.MethodPut, base+"/skills", map[string]any{
		"technicalSkills": []string{"data analysis"},
	})
	if respFrozen.Code != http.StatusConflict {
		t.Fatalf("expected status 409 once past the skills stage, got %d", respFrozen.Code)
	}
	var frozen struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, respFrozen, &frozen)
	if frozen.Error.Code != "skills_frozen" {
		t.Fatalf("expected error code skills_frozen, got %q", frozen.Error.Code)
	}

	respBack := doJSON(t, app.Router, http.MethodPost, base+"/back", nil)
	if respBack.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respBack.Code)
	}
	var backSession struct {
		Stage string `json:"stage"`
	}
	decodeBody(t, respBack, &backSession)
	if backSession.Stage != "skills" {
		t.Fatalf("expected stage skills after back, got %q", backSession.Stage)
	}

	respThaw := doJSON(t, app.Router, http.MethodPut, base+"/skills", map[string]any{
		"technicalSkills": []string{"data analysis"},
	})
	if respThaw.Code != http.StatusOK {
		t.Fatalf("expected skills editable again at skills stage, got %d", respThaw.Code)
	}

	respGetMissing := doJSON(t, app.Router, http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
	if respGetMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", respGetMissing.Code)
	}
}
