package profiles

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-backend/internal/shared/server/middleware"
	"fitness-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.getSnapshot)
	rg.GET("/profile/completeness", h.getCompleteness)
	rg.PUT("/profile/health", h.putHealth)
	rg.PUT("/profile/goal", h.putGoal)
	rg.POST("/profile/progress", h.postProgress)
	rg.POST("/profile/sleep", h.postSleep)
	rg.POST("/profile/nutrition", h.postNutrition)
	rg.POST("/profile/measurements", h.postMeasurement)
}

func (h *Handler) getSnapshot(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	snap, err := h.Svc.Snapshot(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, snap)
}

func (h *Handler) getCompleteness(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	result, err := h.Svc.Completeness(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute profile completeness", nil)
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

type healthRequest struct {
	BirthDate             *string `json:"birthDate"` // YYYY-MM-DD
	RestingHeartRate      *int    `json:"restingHeartRate"`
	PreexistingConditions string  `json:"preexistingConditions"`
	CurrentInjuries       string  `json:"currentInjuries"`
	Smokes                bool    `json:"smokes"`
	Drinks                bool    `json:"drinks"`
}

func (h *Handler) putHealth(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req healthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record := HealthRecord{
		UserID:                userID,
		RestingHeartRate:      req.RestingHeartRate,
		PreexistingConditions: req.PreexistingConditions,
		CurrentInjuries:       req.CurrentInjuries,
		Smokes:                req.Smokes,
		Drinks:                req.Drinks,
	}
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "birthDate must be YYYY-MM-DD", nil)
			return
		}
		record.BirthDate = &parsed
	}

	saved, err := h.Svc.SaveHealth(c.Request.Context(), record)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save health record", nil)
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}

type goalRequest struct {
	Goal            string `json:"goal"`
	ExperienceLevel string `json:"experienceLevel"`
}

func (h *Handler) putGoal(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Goal == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "goal is required", nil)
		return
	}

	saved, err := h.Svc.SaveGoal(c.Request.Context(), GoalRecord{
		UserID:          userID,
		Goal:            req.Goal,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save goal", nil)
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}

type progressRequest struct {
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

func (h *Handler) postProgress(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.AddProgress(c.Request.Context(), ProgressRecord{
		UserID:   userID,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save progress record", nil)
		return
	}
	respond.Created(c, saved)
}

type sleepRequest struct {
	Hours        string `json:"hours"`
	Quality      string `json:"quality"`
	NightWakeups string `json:"nightWakeups"`
}

func (h *Handler) postSleep(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req sleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.AddSleep(c.Request.Context(), SleepRecord{
		UserID:       userID,
		Hours:        req.Hours,
		Quality:      req.Quality,
		NightWakeups: req.NightWakeups,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save sleep record", nil)
		return
	}
	respond.Created(c, saved)
}

type nutritionRequest struct {
	MainMealType  string   `json:"mainMealType"`
	DailyCalories *float64 `json:"dailyCalories"`
	ProteinGrams  *float64 `json:"proteinGrams"`
}

func (h *Handler) postNutrition(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req nutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.AddNutrition(c.Request.Context(), NutritionRecord{
		UserID:        userID,
		MainMealType:  req.MainMealType,
		DailyCalories: req.DailyCalories,
		ProteinGrams:  req.ProteinGrams,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save nutrition record", nil)
		return
	}
	respond.Created(c, saved)
}

type measurementRequest struct {
	BodyFatPct    *float64 `json:"bodyFatPct"`
	MuscleMassPct *float64 `json:"muscleMassPct"`
	WaistCm       *float64 `json:"waistCm"`
	HipCm         *float64 `json:"hipCm"`
}

func (h *Handler) postMeasurement(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.AddMeasurement(c.Request.Context(), MeasurementRecord{
		UserID:        userID,
		BodyFatPct:    req.BodyFatPct,
		MuscleMassPct: req.MuscleMassPct,
		WaistCm:       req.WaistCm,
		HipCm:         req.HipCm,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save measurement record", nil)
		return
	}
	respond.Created(c, saved)
}
