package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/access"
	httptransport "github.com/spec-kit/press-service/internal/api/http"
	"github.com/spec-kit/press-service/internal/api/http/handlers"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/markup"
	"github.com/spec-kit/press-service/internal/observability"
	"github.com/spec-kit/press-service/internal/persistence"
	"github.com/spec-kit/press-service/internal/repository"
	"github.com/spec-kit/press-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	credentialRepo := repository.NewCredentialRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	articleRepo := repository.NewArticleRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	videoRepo := repository.NewVideoRepository(pool)
	pageRepo := repository.NewPageRepository(pool)
	jobRepo := repository.NewJobRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	sanitizer := markup.NewSanitizer()

	heuristic := access.NewHeuristic(cfg.Access)
	resolver := access.NewResolver(profileRepo, heuristic, logger)
	reconciler := access.NewReconciler(profileRepo, metrics, logger)

	sessions := auth.NewSessionStore(redis.Client)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CredentialRepo:    credentialRepo,
		PasswordResetRepo: resetRepo,
		Resolver:          resolver,
		Sessions:          sessions,
	})
	profileService := service.NewProfileService(profileRepo)
	directoryService := service.NewDirectoryService(cfg.Access, service.DirectoryDependencies{
		StaffRepo:  staffRepo,
		Reconciler: reconciler,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	contentService := service.NewContentService(articleRepo, sanitizer, dispatcher)
	storeService := service.NewStoreService(productRepo)
	siteService := service.NewSiteService(videoRepo, pageRepo, sanitizer)
	careersService := service.NewCareersService(jobRepo, dispatcher)

	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), sessions, resolver)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Profile:        handlers.NewProfileHandler(profileService, authService),
		Articles:       handlers.NewArticlesHandler(contentService),
		Staff:          handlers.NewStaffHandler(directoryService),
		Store:          handlers.NewStoreHandler(storeService),
		Site:           handlers.NewSiteHandler(siteService),
		Careers:        handlers.NewCareersHandler(careersService),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
