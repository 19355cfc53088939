package exercises

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the exercises service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches exercise catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exercises", h.listExercises)
	rg.GET("/exercises/:id/media", h.exerciseMedia)
}

func (h *Handler) listExercises(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list exercises", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, e := range items {
		resp = append(resp, gin.H{
			"id":          e.ID,
			"name":        e.Name,
			"description": e.Description,
			"category":    e.Category,
			"muscle":      e.Muscle,
			"difficulty":  e.Difficulty,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) exerciseMedia(c *gin.Context) {
	exerciseID := c.Param("id")
	if exerciseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "exercise id is required", nil)
		return
	}

	body, err := h.Svc.OpenMedia(c.Request.Context(), exerciseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "exercise media not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open exercise media", nil)
		}
		return
	}
	defer body.Close()

	c.Status(http.StatusOK)
	c.Header("Content-Type", "application/octet-stream")
	_, _ = io.Copy(c.Writer, body)
}
