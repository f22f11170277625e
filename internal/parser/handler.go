package parser

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vetpath-backend/internal/shared/metrics"
	"vetpath-backend/internal/shared/server/respond"
)

const (
	minExperienceChars = 10
	maxUploadBytes     = 10 << 20
)

// Handler wires HTTP handlers to the parser service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches parse routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parseExperience)
	rg.POST("/parse/upload", h.parseUpload)
}

type parseRequest struct {
	Experience string `json:"experience"`
}

func (h *Handler) parseExperience(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(strings.TrimSpace(req.Experience)) < minExperienceChars {
		respond.Error(c, http.StatusBadRequest, "validation_error", "please provide a more detailed experience description", nil)
		return
	}

	metrics.IncParseRequests()
	set, err := h.Svc.Parse(c.Request.Context(), req.Experience)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse experience", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"skills":  set,
		"rawText": req.Experience,
	})
}

func (h *Handler) parseUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10MB limit", nil)
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF uploads are supported", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	text, err := ExtractPDFText(data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from PDF", nil)
		return
	}
	if len(strings.TrimSpace(text)) < minExperienceChars {
		respond.Error(c, http.StatusBadRequest, "validation_error", "the document does not contain enough text to parse", nil)
		return
	}

	metrics.IncParseRequests()
	set, err := h.Svc.Parse(c.Request.Context(), text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse experience", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"skills":  set,
		"rawText": text,
	})
}
