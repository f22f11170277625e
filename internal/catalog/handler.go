package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/shared/server/respond"
)

// Handler serves the read-only catalog endpoints.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/careers/:code", h.getCareer)
	rg.GET("/occupations", h.listOccupations)
	rg.GET("/industries", h.listIndustries)
	rg.GET("/mos-codes", h.listMOSCodes)
}

func (h *Handler) getCareer(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "occupation code is required", nil)
		return
	}

	record, err := h.Repo.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "occupation "+code+" not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch occupation", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, record)
}

func (h *Handler) listOccupations(c *gin.Context) {
	industry := c.Query("industry")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	records, err := h.Repo.List(c.Request.Context(), industry, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list occupations", nil)
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, r := range records {
		resp = append(resp, gin.H{
			"occupationCode":  r.OccupationCode,
			"occupationTitle": r.OccupationTitle,
			"medianWage":      r.MedianWage,
			"industry":        r.Industry,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) listIndustries(c *gin.Context) {
	industries, err := h.Repo.ListIndustries(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list industries", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"industries": industries})
}

func (h *Handler) listMOSCodes(c *gin.Context) {
	branch := c.Query("branch")

	entries, err := h.Repo.ListCrosswalk(c.Request.Context(), branch)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list MOS codes", nil)
		return
	}

	// One row per MOS: the crosswalk stores an entry per civilian match.
	seen := make(map[string]bool, len(entries))
	resp := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		key := e.Branch + "/" + e.MOSCode
		if seen[key] {
			continue
		}
		seen[key] = true
		resp = append(resp, gin.H{
			"mosCode":       e.MOSCode,
			"branch":        e.Branch,
			"militaryTitle": e.MilitaryTitle,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}
