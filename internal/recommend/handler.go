package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-backend/internal/quota"
	"fitness-backend/internal/shared/server/middleware"
	"fitness-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.createRecommendation)
	rg.GET("/recommendations", h.listRecommendations)
	rg.GET("/recommendations/:id", h.getRecommendation)
	rg.PATCH("/recommendations/:id/status", h.updateStatus)
}

func (h *Handler) createRecommendation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var ov Overrides
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&ov); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	result, err := h.Svc.Recommend(c.Request.Context(), userID, c.GetString("requestId"), ov)
	if err != nil {
		switch {
		case errors.Is(err, quota.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your recommendation limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "quota", "issue": "limit_reached"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "recommendation_failed", err.Error(), nil)
		}
		return
	}
	respond.Created(c, result)
}

func (h *Handler) listRecommendations(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list recommendations", nil)
		return
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) getRecommendation(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load recommendation", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, rec)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusConflict, "invalid_status", "recommendation status cannot be changed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update status", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"status": req.Status})
}
