package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/profile"
	"vetpath-backend/internal/shared/server/respond"
	"vetpath-backend/internal/skills"
)

// Handler wires HTTP handlers to the session store.
type Handler struct {
	Repo *MemoryRepo
}

// NewHandler constructs a Handler.
func NewHandler(repo *MemoryRepo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.createSession)
	rg.GET("/sessions/:id", h.getSession)
	rg.PUT("/sessions/:id/skills", h.updateSkills)
	rg.POST("/sessions/:id/advance", h.advance)
	rg.POST("/sessions/:id/back", h.back)
}

func (h *Handler) createSession(c *gin.Context) {
	var p profile.MilitaryProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Repo.Create(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}
	respond.Created(c, session)
}

func (h *Handler) getSession(c *gin.Context) {
	session, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to fetch session")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) updateSkills(c *gin.Context) {
	var set skills.SkillSet
	if err := c.ShouldBindJSON(&set); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Repo.UpdateSkills(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		h.respondError(c, err, "failed to update skills")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) advance(c *gin.Context) {
	session, err := h.Repo.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to advance session")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) back(c *gin.Context) {
	session, err := h.Repo.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to move session back")
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrSkillsFrozen):
		respond.Error(c, http.StatusConflict, "skills_frozen", "skills can no longer be edited at this stage", nil)
	case errors.Is(err, ErrAtFirstStage):
		respond.Error(c, http.StatusConflict, "invalid_transition", "session is already at the first stage", nil)
	case errors.Is(err, ErrAtLastStage):
		respond.Error(c, http.StatusConflict, "invalid_transition", "session is already at the last stage", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
