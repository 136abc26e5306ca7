package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	"github.com/BruksfildServices01/professional-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/professional-agenda/internal/db"
	"github.com/BruksfildServices01/professional-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/professional-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/professional-agenda/internal/logger"
	"github.com/BruksfildServices01/professional-agenda/internal/middleware"
	"github.com/BruksfildServices01/professional-agenda/internal/routes"
	"github.com/BruksfildServices01/professional-agenda/internal/telemetry"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OtelEnabled,
		OTLPEndpoint: cfg.OtelEndpoint,
		SampleRatio:  cfg.OtelSamplingRate,
	})
	if err != nil {
		zl.Fatal("otel setup failed", zap.Error(err))
	}

	// ======================================================
	// AUDIT SINKS
	// ======================================================
	sinks := []audit.Sink{audit.NewZapSink(zl)}
	checks := map[string]handlers.Check{}

	deps := routes.Deps{
		Repo:        infraRepo.NewAvailabilityMemoryRepository(),
		Log:         zl,
		CORSOrigins: cfg.AllowedOrigins(),
		Checks:      checks,
	}

	if cfg.DBUrl != "" {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			zl.Fatal("database init failed", zap.Error(err))
		}
		deps.DB = db
		sinks = append(sinks, audit.NewGormSink(db))
		checks["db"] = func(ctx context.Context) error { return dbpkg.Ping(ctx, db) }
	}

	var kafkaSink *audit.KafkaSink
	if cfg.KafkaBrokers != "" {
		kafkaSink = audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		sinks = append(sinks, kafkaSink)
		checks["kafka"] = kafkaSink.Ping
	}

	dispatcher := audit.NewDispatcher(zl, cfg.AuditQueueSize, sinks...)
	deps.Audit = dispatcher

	// ======================================================
	// RATE LIMIT
	// ======================================================
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		deps.Limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMin, time.Minute, "agenda:rl")
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		deps.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitPerMin)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, telemetry.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server shutdown error", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		zl.Warn("audit queue not drained", zap.Error(err))
	}
	if kafkaSink != nil {
		_ = kafkaSink.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		zl.Warn("otel shutdown error", zap.Error(err))
	}

	zl.Info("server stopped")
}
