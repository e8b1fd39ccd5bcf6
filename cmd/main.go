package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/quizdesk/quizdesk/config"
	"github.com/quizdesk/quizdesk/database"
	_ "github.com/quizdesk/quizdesk/docs" // Swagger docs
	adminctrl "github.com/quizdesk/quizdesk/internal/controller/admin"
	userctrl "github.com/quizdesk/quizdesk/internal/controller/user"
	"github.com/quizdesk/quizdesk/internal/logger"
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/quizdesk/quizdesk/internal/repository"
	"github.com/quizdesk/quizdesk/internal/service"
	"github.com/quizdesk/quizdesk/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// @title Quizdesk API
// @version 1.0
// @description Timed tests with automatic scoring, manual review of free-text answers and result protocols.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger { return logger.FxLogger{} }),

		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			notifier.NewBroker,
			func(b *notifier.Broker) notifier.Publisher { return b },
			session.NewTracker,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminTestService,
			service.NewQuestionService,
			service.NewUserTestService,
			service.NewTestDeliveryService,
			service.NewProtocolService,
			service.NewTestSubmissionService,
			service.NewAttemptService,
			NewReviewAssistant,
			service.NewReviewService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			adminctrl.NewAdminResultController,
			adminctrl.NewAdminEventsController,
			userctrl.NewUserTestController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func NewReviewAssistant(lc fx.Lifecycle, cfg *config.Config) (service.ReviewAssistant, error) {
	assistant, err := service.NewReviewAssistant(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return assistant.Close()
		},
	})
	return assistant, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// Credentialed requests cannot use a literal "*" origin.
	if len(cfg.Server.CORSOrigins) == 0 || (len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*") {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	broker *notifier.Broker,
	adminTestCtrl *adminctrl.AdminTestController,
	adminResultCtrl *adminctrl.AdminResultController,
	adminEventsCtrl *adminctrl.AdminEventsController,
	userTestCtrl *userctrl.UserTestController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	adminTestCtrl.RegisterRoutes(adminAPIGroup)
	adminResultCtrl.RegisterRoutes(adminAPIGroup)
	adminEventsCtrl.RegisterRoutes(adminAPIGroup)

	userTestCtrl.RegisterRoutes(router.Group("/api/v1"))

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	// Live event streams only end when their subscription closes.
	server.RegisterOnShutdown(broker.Close)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quizdesk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
