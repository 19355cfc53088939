package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "fitness-backend/internal/auth"
	"fitness-backend/internal/classifier"
	"fitness-backend/internal/classifier/inference"
	"fitness-backend/internal/exercises"
	"fitness-backend/internal/profiles"
	"fitness-backend/internal/queue"
	"fitness-backend/internal/quota"
	"fitness-backend/internal/recommend"
	"fitness-backend/internal/routines"
	"fitness-backend/internal/shared/config"
	"fitness-backend/internal/shared/server"
	"fitness-backend/internal/shared/storage/db"
	"fitness-backend/internal/shared/storage/object"
	localstore "fitness-backend/internal/shared/storage/object/local"
	s3store "fitness-backend/internal/shared/storage/object/s3"
	"fitness-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	UsersRepo     users.Repo
	ProfileRepo   profiles.Repo
	ExerciseRepo  exercises.Repo
	RoutineRepo   routines.Repo
	RecommendRepo recommend.Repo

	Classifier classifier.Client

	UsersService     *users.Service
	ProfileService   *profiles.Service
	ExerciseService  *exercises.Service
	RoutineService   *routines.Service
	QuotaService     *quota.Service
	RecommendService *recommend.Service

	UsersHandler     *users.Handler
	ProfileHandler   *profiles.Handler
	ExerciseHandler  *exercises.Handler
	RoutineHandler   *routines.Handler
	QuotaHandler     *quota.Handler
	RecommendHandler *recommend.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		RecommendHandler: app.RecommendHandler,
		RoutineHandler:   app.RoutineHandler,
		ExerciseHandler:  app.ExerciseHandler,
		ProfileHandler:   app.ProfileHandler,
		QuotaHandler:     app.QuotaHandler,
		UserHandler:      app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("FB_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildClassifier(cfg config.Config) (classifier.Client, error) {
	if strings.TrimSpace(cfg.InferenceURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: INFERENCE_URL empty; recommendations will fail until configured")
			return classifier.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("INFERENCE_URL is required")
	}
	return inference.NewClient(cfg.InferenceURL, cfg.ModelVersion)
}

func buildServices(app *App) error {
	var (
		userRepo      users.Repo
		profileRepo   profiles.Repo
		exerciseRepo  exercises.Repo
		routineRepo   routines.Repo
		recommendRepo recommend.Repo
		quotaSvc      *quota.Service
	)

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		profileRepo = &profiles.PGRepo{DB: app.DB}
		exerciseRepo = &exercises.PGRepo{DB: app.DB}
		routineRepo = &routines.PGRepo{DB: app.DB}
		recommendRepo = &recommend.PGRepo{DB: app.DB}
		quotaSvc = quota.NewPostgresService(quota.NewPGStore(app.DB))
	} else {
		userRepo = users.NewMemoryRepo()
		profileRepo = profiles.NewMemoryRepo()
		exerciseRepo = exercises.NewMemoryRepo()
		routineRepo = routines.NewMemoryRepo()
		recommendRepo = recommend.NewMemoryRepo()
		quotaSvc = quota.NewService()
		if err := exercises.SeedDefaults(context.Background(), exerciseRepo); err != nil {
			return err
		}
	}

	classifierClient, err := buildClassifier(app.Config)
	if err != nil {
		return err
	}

	userSvc := users.NewService(userRepo)
	profileSvc := &profiles.Service{Repo: profileRepo}
	exerciseSvc := &exercises.Service{Repo: exerciseRepo, Store: app.Store}
	routineSvc := &routines.Service{Repo: routineRepo}
	recommendSvc := &recommend.Service{
		Repo:         recommendRepo,
		Profiles:     profileSvc,
		Classifier:   classifierClient,
		Catalog:      exerciseRepo,
		Routines:     routineSvc,
		Quota:        quotaSvc,
		Queue:        app.Queue,
		Keywords:     recommend.DefaultKeywords(),
		ModelVersion: app.Config.ModelVersion,
	}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.UsersRepo = userRepo
	app.ProfileRepo = profileRepo
	app.ExerciseRepo = exerciseRepo
	app.RoutineRepo = routineRepo
	app.RecommendRepo = recommendRepo
	app.Classifier = classifierClient
	app.UsersService = userSvc
	app.ProfileService = profileSvc
	app.ExerciseService = exerciseSvc
	app.RoutineService = routineSvc
	app.QuotaService = quotaSvc
	app.RecommendService = recommendSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.ProfileHandler = profiles.NewHandler(profileSvc)
	app.ExerciseHandler = exercises.NewHandler(exerciseSvc)
	app.RoutineHandler = routines.NewHandler(routineSvc)
	app.QuotaHandler = quota.NewHandler(quotaSvc)
	app.RecommendHandler = recommend.NewHandler(recommendSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
