package matches

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/shared/server/middleware"
	"jobmatch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches", h.create)
	rg.GET("/matches/:id", h.get)
	rg.GET("/matches", h.list)
	rg.GET("/matches/resume/:resumeId/recommendations", h.recommendations)
}

type createMatchRequest struct {
	ResumeID string `json:"resumeId"`
	JobID    string `json:"jobId"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.JobID = strings.TrimSpace(req.JobID)
	if req.JobID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobId is required", nil)
		return
	}

	match, err := h.Svc.Create(c.Request.Context(), userID, strings.TrimSpace(req.ResumeID), req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNoResume):
			respond.Error(c, http.StatusNotFound, "no_resume", "upload a resume before requesting a match", nil)
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "job_not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run match", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(match))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	match, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(match))
}

// recommendations ranks the user's active job postings against a resume.
// The literal resume ID "current" selects the most recent upload.
func (h *Handler) recommendations(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resumeID := c.Param("resumeId")
	if resumeID == "current" {
		resumeID = ""
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	minScore := 0.0
	if v := c.Query("minScore"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			minScore = parsed
		}
	}

	list, err := h.Svc.Recommendations(c.Request.Context(), userID, resumeID, limit, minScore)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResume):
			respond.Error(c, http.StatusNotFound, "no_resume", "upload a resume before requesting recommendations", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		}
		return
	}

	resp := make([]RecommendationResponse, 0, len(list))
	for _, rec := range list {
		resp = append(resp, toRecommendationResponse(rec))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) list(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list matches", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, match := range list {
		resp = append(resp, gin.H{
			"matchId":      match.ID,
			"resumeId":     match.ResumeID,
			"jobId":        match.JobID,
			"overallScore": match.Result.OverallScore,
			"createdAt":    match.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}
