package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/linkedin-studio/internal/api/handlers"
	"github.com/maheshrc27/linkedin-studio/internal/api/middleware"
	"github.com/maheshrc27/linkedin-studio/internal/database"
	job "github.com/maheshrc27/linkedin-studio/internal/jobs"
	"github.com/maheshrc27/linkedin-studio/internal/metrics"
	"github.com/maheshrc27/linkedin-studio/internal/queue"
	"github.com/maheshrc27/linkedin-studio/internal/repository"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron"
	"go.uber.org/zap"
)

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	var generator service.TextGenerator = service.DisabledGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := service.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		defer gemini.Close()
		generator = gemini
	} else {
		zap.L().Warn("GEMINI_API_KEY not set, generation is disabled")
	}

	r2Service, err := service.NewR2Service(ctx, cfg.R2)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	pillarRepo := repository.NewPillarRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	postingHistoryRepo := repository.NewPostingHistoryRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)
	projectRepo := repository.NewAIProjectRepository(db)
	sessionRepo := repository.NewAISessionRepository(db)
	versionRepo := repository.NewAIVersionRepository(db)
	aiAssetRepo := repository.NewAIAssetRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	eventRepo := repository.NewEventRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	scheduler := queue.NewScheduler(client)
	linkedinService := service.NewLinkedInService(*cfg, postRepo, socialAccountRepo, postingHistoryRepo)

	services := routeServices{
		auth:      service.NewAuthService(*cfg, userRepo),
		user:      service.NewUserService(userRepo),
		settings:  service.NewSettingsService(settingsRepo),
		apiKeys:   service.NewApiKeyService(apiKeyRepo),
		platform:  service.NewPlatformService(linkedinService, socialAccountRepo),
		linkedin:  linkedinService,
		pillars:   service.NewPillarService(pillarRepo),
		posts:     service.NewPostService(postRepo, pillarRepo, socialAccountRepo, scheduler, linkedinService),
		media:     service.NewMediaService(mediaAssetRepo, r2Service, int64(cfg.MaxUploadSizeMB)*1024*1024),
		comments:  service.NewCommentService(commentRepo, postRepo),
		templates: service.NewTemplateService(templateRepo),
		creator: service.NewCreatorService(
			repository.NewTransactor(db),
			projectRepo, sessionRepo, versionRepo, aiAssetRepo,
			postRepo, pillarRepo,
			generator,
			time.Duration(cfg.GenerationTimeoutSecs)*time.Second),
		leads:     service.NewLeadService(leadRepo),
		events:    service.NewEventService(eventRepo),
		analytics: service.NewAnalyticsService(analyticsRepo),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    cfg.MaxUploadSizeMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(fiberrecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	app.Use(metrics.Middleware())

	registerRoutes(app, db, middleware.NewAuthMiddleware(*cfg, services.apiKeys), services)

	refreshTokenJob := job.NewTokenRefreshJob(socialAccountRepo, linkedinService)
	sweepJob := job.NewScheduleSweepJob(postRepo, scheduler)

	c := cron.New()
	if err := c.AddFunc("@every 10m", refreshTokenJob.RefreshTokens); err != nil {
		return fmt.Errorf("schedule token refresh: %w", err)
	}
	if err := c.AddFunc("@every 5m", sweepJob.Sweep); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	c.Start()
	defer c.Stop()

	worker := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Logger:      zap.S(),
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypePublishPost, queue.NewQueue(postRepo, linkedinService).HandlePublishPostTask)

	zap.L().Info("starting the publish worker", zap.Int("concurrency", cfg.WorkerConcurrency))
	if err := worker.Start(mux); err != nil {
		return fmt.Errorf("start publish worker: %w", err)
	}
	defer worker.Shutdown()

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server is running", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zap.L().Error("failed to shut down server", zap.Error(err))
	}
	return nil
}
