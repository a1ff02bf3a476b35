package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusware/roster/internal/app/controllers"
	"github.com/campusware/roster/internal/app/models"
	appRoutes "github.com/campusware/roster/internal/app/routes"
	appServices "github.com/campusware/roster/internal/app/services"
	"github.com/campusware/roster/internal/app/store"
	"github.com/campusware/roster/internal/config"
	appMiddleware "github.com/campusware/roster/internal/middleware"
	"github.com/campusware/roster/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             *store.Store
	StudentService    *appServices.RosterService
	CourseService     *appServices.RosterService
	StudentController *appControllers.RecordController
	CourseController  *appControllers.RecordController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the record store and guarantees every collection has
// a backing file with a valid empty structure.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	st, err := store.New(cfg.Storage.Dir, store.Format(cfg.Storage.Format), lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open record store")
		return nil, err
	}

	if err := st.Ensure(models.Students, models.Courses); err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize collections")
		return nil, fmt.Errorf("collection initialization failed: %w", err)
	}

	lgr.Info().
		Str("dir", cfg.Storage.Dir).
		Str("format", cfg.Storage.Format).
		Msg("Record store ready")
	return st, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.StudentService = appServices.NewRosterService(st, models.Students, lgr)
	deps.CourseService = appServices.NewRosterService(st, models.Courses, lgr)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
