package matching

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/server/respond"
	"vetpath-backend/internal/skills"
)

// Handler wires HTTP handlers to the matching service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.matchSkills)
	rg.POST("/match/profile", h.matchProfile)
	rg.GET("/match/mos/:code", h.matchMOS)
}

type matchRequest struct {
	Skills      skills.SkillSet `json:"skills"`
	Preferences *Preferences    `json:"preferences,omitempty"`
	Limit       int             `json:"limit,omitempty"`
}

func (h *Handler) matchSkills(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Skills.IsEmpty() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please provide at least one skill to match", nil)
		return
	}

	metrics.IncMatchRequests()
	start := metrics.NowMillis()
	matches, err := h.Svc.Match(c.Request.Context(), req.Skills, req.Preferences, req.Limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match careers", nil)
		return
	}
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)

	respond.JSON(c, http.StatusOK, gin.H{
		"matches":    matches,
		"totalFound": len(matches),
	})
}

func (h *Handler) matchProfile(c *gin.Context) {
	var p profile.MilitaryProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if p.ExperienceDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "experience description is required", nil)
		return
	}

	metrics.IncMatchRequests()
	start := metrics.NowMillis()
	parsed, matches, err := h.Svc.MatchFromProfile(c.Request.Context(), p, 0)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process profile", nil)
		return
	}
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)

	respond.JSON(c, http.StatusOK, gin.H{
		"parsedSkills": parsed,
		"matches":      matches,
		"totalFound":   len(matches),
	})
}

func (h *Handler) matchMOS(c *gin.Context) {
	mosCode := c.Param("code")
	if mosCode == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "MOS code is required", nil)
		return
	}
	branch := c.Query("branch")

	metrics.IncMatchRequests()
	matches, err := h.Svc.MatchFromMOS(c.Request.Context(), mosCode, branch, 0)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match MOS", nil)
		return
	}

	resp := gin.H{
		"matches":    matches,
		"totalFound": len(matches),
	}
	if len(matches) == 0 {
		resp["message"] = "No direct matches found for MOS " + mosCode + ". Try providing a detailed experience description."
	}
	respond.JSON(c, http.StatusOK, resp)
}
