package resume

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/server/respond"
	"vetpath-backend/internal/skills"
)

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.generateResume)
}

type resumeRequest struct {
	Profile       profile.MilitaryProfile `json:"profile"`
	ParsedSkills  skills.SkillSet         `json:"parsedSkills"`
	TargetJob     string                  `json:"targetJob"`
	TargetCompany string                  `json:"targetCompany,omitempty"`
}

func (h *Handler) generateResume(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.TargetJob == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please specify a target job", nil)
		return
	}

	metrics.IncResumeRequests()
	text, err := h.Svc.Generate(c.Request.Context(), req.Profile, req.ParsedSkills, req.TargetJob, req.TargetCompany)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"resumeText": text,
		"format":     "markdown",
	})
}
