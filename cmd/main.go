package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/edumobile/edu-api/config"
	"github.com/edumobile/edu-api/database"
	"github.com/edumobile/edu-api/internal/controller"
	"github.com/edumobile/edu-api/internal/logger"
	"github.com/edumobile/edu-api/internal/middleware"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
	"github.com/edumobile/edu-api/internal/service"
)

// @title Edu Mobile API
// @version 1.0
// @description REST backend for a mobile learning platform: courses, materials, quizzes, progress tracking and learning analytics.
// @contact.name API Support
// @contact.email support@edumobile.dev
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewMaterialRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerOptionRepository,
			repository.NewQuizAttemptRepository,
			repository.NewUserAnswerRepository,
			repository.NewProgressRepository,
		),

		fx.Provide(
			service.NewTokenManager,
			service.NewAuthService,
			service.NewUserService,
			service.NewCourseService,
			service.NewMaterialService,
			service.NewTestService,
			service.NewQuestionService,
			service.NewQuizService,
			service.NewProgressService,
			service.NewAnalyticsService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewCourseController,
			controller.NewMaterialController,
			controller.NewTestController,
			controller.NewQuestionController,
			controller.NewQuizController,
			controller.NewProgressController,
			controller.NewAnalyticsController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *service.TokenManager,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	courseCtrl *controller.CourseController,
	materialCtrl *controller.MaterialController,
	testCtrl *controller.TestController,
	questionCtrl *controller.QuestionController,
	quizCtrl *controller.QuizController,
	progressCtrl *controller.ProgressController,
	analyticsCtrl *controller.AnalyticsController,
) {
	api := router.Group("/api")
	authCtrl.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens))
	{
		userCtrl.RegisterRoutes(protected)
		courseCtrl.RegisterRoutes(protected)
		materialCtrl.RegisterRoutes(protected)
		testCtrl.RegisterRoutes(protected)
		questionCtrl.RegisterRoutes(protected)
		quizCtrl.RegisterRoutes(protected)
		progressCtrl.RegisterRoutes(protected)
	}

	staff := protected.Group("")
	staff.Use(middleware.RequireRole("admin", "teacher"))
	analyticsCtrl.RegisterRoutes(staff)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Edu Mobile API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Material{},
		&model.Test{},
		&model.Question{},
		&model.AnswerOption{},
		&model.QuizAttempt{},
		&model.UserAnswer{},
		&model.Progress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// gorm struct tags cannot express a partial index; this is what keeps
	// StartTest to at most one open attempt per user and test under
	// concurrent requests.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_attempt
		ON user_quiz_attempts (user_id, test_id) WHERE finished_at IS NULL`).Error
	if err != nil {
		log.Error().Err(err).Msg("Creating open-attempt unique index failed")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
