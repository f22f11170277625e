package gaps

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/server/respond"
	"vetpath-backend/internal/skills"
)

// Handler wires HTTP handlers to the gap analyzer.
type Handler struct {
	Analyzer *Analyzer
	Catalog  catalog.Repo
}

// NewHandler constructs a Handler.
func NewHandler(analyzer *Analyzer, cat catalog.Repo) *Handler {
	return &Handler{Analyzer: analyzer, Catalog: cat}
}

// RegisterRoutes attaches gap analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/gaps", h.analyzeGaps)
	rg.GET("/gaps/readiness/:code", h.readiness)
	rg.GET("/gaps/quick-wins/:code", h.quickWins)
}

type gapRequest struct {
	VeteranSkills        []string `json:"veteranSkills"`
	TargetOccupationCode string   `json:"targetOccupationCode"`
}

func (h *Handler) analyzeGaps(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.VeteranSkills) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please provide veteran skills", nil)
		return
	}

	occ, ok := h.lookupOccupation(c, req.TargetOccupationCode)
	if !ok {
		return
	}

	metrics.IncGapRequests()
	report, err := h.Analyzer.AnalyzeWithNarrative(c.Request.Context(), skills.Set(req.VeteranSkills), occ)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze gaps", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"analysis": report})
}

func (h *Handler) readiness(c *gin.Context) {
	skillList, ok := h.querySkills(c)
	if !ok {
		return
	}
	occ, found := h.lookupOccupation(c, c.Param("code"))
	if !found {
		return
	}

	metrics.IncGapRequests()
	have := skills.Set(skillList)
	report, err := h.Analyzer.Analyze(c.Request.Context(), have, occ)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to calculate readiness", nil)
		return
	}

	respond.JSON(c, http.StatusOK, ReadinessFor(report, occ, have))
}

func (h *Handler) quickWins(c *gin.Context) {
	skillList, ok := h.querySkills(c)
	if !ok {
		return
	}
	occ, found := h.lookupOccupation(c, c.Param("code"))
	if !found {
		return
	}

	metrics.IncGapRequests()
	report, err := h.Analyzer.Analyze(c.Request.Context(), skills.Set(skillList), occ)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to find quick wins", nil)
		return
	}

	recommendations := QuickWins(report, 3)
	respond.JSON(c, http.StatusOK, gin.H{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

func (h *Handler) querySkills(c *gin.Context) ([]string, bool) {
	raw := c.Query("skills")
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please provide at least one skill", nil)
		return nil, false
	}
	return out, true
}

func (h *Handler) lookupOccupation(c *gin.Context, code string) (catalog.OccupationRecord, bool) {
	if code == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "occupation code is required", nil)
		return catalog.OccupationRecord{}, false
	}
	occ, err := h.Catalog.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "occupation "+code+" not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch occupation", nil)
		}
		return catalog.OccupationRecord{}, false
	}
	return occ, true
}
