package routines

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-backend/internal/shared/server/middleware"
	"fitness-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the routines service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches routine routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/routines", h.listRoutines)
	rg.GET("/routines/:id", h.getRoutine)
	rg.POST("/routines", h.createRoutine)
	rg.PUT("/routines/:id/exercises", h.replaceExercises)
}

type exerciseSlotRequest struct {
	ExerciseID string `json:"exerciseId"`
	Reps       int    `json:"reps"`
}

type createRoutineRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Difficulty  string                `json:"difficulty"`
	Exercises   []exerciseSlotRequest `json:"exercises"`
}

type replaceExercisesRequest struct {
	Exercises []exerciseSlotRequest `json:"exercises"`
}

func (h *Handler) listRoutines(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list routines", nil)
		return
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) getRoutine(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	routine, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "routine not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load routine", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, routine)
}

func (h *Handler) createRoutine(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var req createRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	input := CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
	}
	for _, e := range req.Exercises {
		input.Exercises = append(input.Exercises, RoutineExercise{ExerciseID: e.ExerciseID, Reps: e.Reps})
	}

	routine, err := h.Svc.Create(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTaken):
			respond.Error(c, http.StatusConflict, "conflict", "routine name already in use", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.Created(c, routine)
}

func (h *Handler) replaceExercises(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}

	var req replaceExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Exercises) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one exercise is required", nil)
		return
	}

	slots := make([]RoutineExercise, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		slots = append(slots, RoutineExercise{ExerciseID: e.ExerciseID, Reps: e.Reps})
	}

	routine, err := h.Svc.ReplaceExercises(c.Request.Context(), userID, c.Param("id"), slots)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "routine not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to replace exercises", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, routine)
}
