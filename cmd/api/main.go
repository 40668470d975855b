package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/config"
	dbpkg "github.com/VaibhaviS123/SafeStay/internal/db"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/infra/memory"
	"github.com/VaibhaviS123/SafeStay/internal/logging"
	"github.com/VaibhaviS123/SafeStay/internal/metrics"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/routes"
	"github.com/VaibhaviS123/SafeStay/internal/storage"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
	"github.com/VaibhaviS123/SafeStay/internal/tracing"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if err := serve(cfg, logger); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, logger log.Logger) error {
	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, logger, cfg.TracingStdout)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	if err := validators.RegisterGin(); err != nil {
		return err
	}

	policy, err := bookingdomain.NewPolicy(cfg.CheckInActors)
	if err != nil {
		return err
	}

	// ======================================================
	// DATASTORE
	// ======================================================
	var repos routes.Repositories
	if cfg.InMemory() {
		level.Warn(logger).Log("msg", "using in-memory store, data is lost on restart")
		repos = routes.MemoryRepositories(memory.NewStore().Repos())
	} else {
		db, err := dbpkg.NewDB(cfg.DBUrl, logger)
		if err != nil {
			return err
		}
		repos = routes.GormRepositories(db)
	}

	revoker, closeRevoker, err := newRevoker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	provider := auth.NewJWTProvider(repos.Accounts, auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL), revoker)

	var images storage.ImageStore = storage.Passthrough{}
	if cfg.S3Enabled() {
		images = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			URLTTL:    cfg.ImageURLTTL,
		})
	}

	dispatcher := audit.NewDispatcher(audit.New(repos.Audit), cfg.AuditQueueSize, logger)

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
		logging.GinMiddleware(logger),
		metrics.GinMiddleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		Repos:    repos,
		Provider: provider,
		Images:   images,
		Audit:    dispatcher,
		Policy:   policy,
		Location: timezone.Location(cfg.Timezone),
		Clock:    timezone.SystemClock(),
		Logger:   logger,
	})

	apiSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, tracing.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ======================================================
	// RUN GROUP
	// ======================================================
	g := &run.Group{}

	g.Add(func() error {
		level.Info(logger).Log("msg", "starting API server", "addr", apiSrv.Addr)
		return ignoreClosed(apiSrv.ListenAndServe())
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiSrv.Shutdown(ctx); err != nil {
			level.Error(logger).Log("msg", "failed to stop API server", "err", err)
		}
		dispatcher.Close()
		if err := closeRevoker(); err != nil {
			level.Error(logger).Log("msg", "failed to close redis client", "err", err)
		}
	})

	g.Add(func() error {
		m := http.NewServeMux()
		m.Handle("/metrics", promhttp.HandlerFor(
			metrics.Registry,
			promhttp.HandlerOpts{EnableOpenMetrics: true},
		))
		metricsSrv.Handler = m
		level.Info(logger).Log("msg", "starting metrics server", "addr", metricsSrv.Addr)
		return ignoreClosed(metricsSrv.ListenAndServe())
	}, func(error) {
		if err := metricsSrv.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to stop metrics server", "err", err)
		}
	})

	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	err = g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		level.Info(logger).Log("msg", "shutting down", "signal", sig.Signal)
		return nil
	}
	return err
}

// newRevoker uses Redis when REDIS_URL is set so sign-outs survive restarts
// and are shared between instances. The returned func releases the client.
func newRevoker(ctx context.Context, cfg *config.Config, logger log.Logger) (auth.Revoker, func() error, error) {
	if cfg.RedisURL == "" {
		level.Info(logger).Log("msg", "REDIS_URL not set, token revocation kept in memory")
		return auth.NewMemoryRevoker(), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	return auth.NewRedisRevoker(rdb), rdb.Close, nil
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
