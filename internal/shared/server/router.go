package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "fitness-backend/internal/auth"
	"fitness-backend/internal/exercises"
	"fitness-backend/internal/profiles"
	"fitness-backend/internal/quota"
	"fitness-backend/internal/recommend"
	"fitness-backend/internal/routines"
	"fitness-backend/internal/shared/config"
	"fitness-backend/internal/shared/metrics"
	"fitness-backend/internal/shared/server/middleware"
	"fitness-backend/internal/shared/server/respond"
	"fitness-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up. Nil handlers are
// skipped, which keeps partial setups (tests, tooling) working.
type RouterDeps struct {
	Config           config.Config
	RecommendHandler *recommend.Handler
	RoutineHandler   *routines.Handler
	ExerciseHandler  *exercises.Handler
	ProfileHandler   *profiles.Handler
	QuotaHandler     *quota.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(recommendRateLimit()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.ExerciseHandler != nil {
		deps.ExerciseHandler.RegisterRoutes(api)
	}
	if deps.RoutineHandler != nil {
		deps.RoutineHandler.RegisterRoutes(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(api)
	}
	if deps.QuotaHandler != nil {
		deps.QuotaHandler.RegisterRoutes(api)
		if deps.Config.Env == "dev" || deps.Config.Env == "local" {
			dev := api.Group("/dev")
			deps.QuotaHandler.RegisterDevRoutes(dev)
		}
	}

	return r
}

// recommendRateLimit throttles recommendation creation harder than the rest
// of the API; inference calls are the expensive path.
func recommendRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"RECOMMEND": {Rate: 0.2, Burst: 3},
			"DEFAULT":   {Rate: 10, Burst: 30},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/recommendations" {
				return "RECOMMEND"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
