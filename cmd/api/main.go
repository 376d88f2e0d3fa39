package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"careerhub/internal/app"
	"careerhub/internal/config"
	"careerhub/internal/database"
	apphttp "careerhub/internal/http"
	"careerhub/internal/http/handlers"
	"careerhub/internal/http/metrics"
	httpmw "careerhub/internal/http/middleware"
	"careerhub/internal/http/response"
	"careerhub/internal/observability"
	"careerhub/internal/repository/postgres"
	"careerhub/internal/security"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	listingRepo := postgres.NewListingRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	listingService := app.NewListingService(listingRepo, applicationRepo, auditRepo, logger)
	moderationService := app.NewModerationService(applicationRepo, listingRepo, auditRepo, logger)
	auditService := app.NewAuditService(auditRepo)
	userService := app.NewUserService(userRepo)
	reviewService := app.NewReviewService(reviewRepo, listingRepo, auditRepo, logger)

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("redis url parse failed", slog.String("error", err.Error()))
		} else {
			client := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Error("redis ping failed, falling back to in-memory limiter", slog.String("error", err.Error()))
				_ = client.Close()
			} else {
				limiter = httpmw.NewRedisLimiter(client)
				defer client.Close()
			}
			cancel()
		}
	}

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	collector := metrics.NewCollector()
	response.SetErrorObserver(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		ListingHandler:     handlers.NewListingHandler(listingService, limiter),
		ApplicationHandler: handlers.NewApplicationHandler(moderationService, limiter, cfg.PageSize),
		ReviewHandler:      handlers.NewReviewHandler(reviewService),
		AuditHandler:       handlers.NewAuditHandler(auditService),
		UserHandler:        handlers.NewUserHandler(userService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		Metrics:            collector,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
