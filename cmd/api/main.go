package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/sync/errgroup"

	"feedstore/internal/config"
	"feedstore/internal/infra/adapter/persistence/jsonfile"
	"feedstore/internal/observability/logging"
	"feedstore/internal/observability/slo"
	"feedstore/internal/observability/tracing"
	pkgconfig "feedstore/internal/pkg/config"

	feedUC "feedstore/internal/usecase/feed"

	hhttp "feedstore/internal/handler/http"
	hfeed "feedstore/internal/handler/http/feed"
	"feedstore/internal/handler/http/requestid"

	_ "feedstore/docs" // swagger docs
)

// @title           Feed Store API
// @version         1.0
// @description     RSS フィードとエントリを管理し、RSS 2.0 として配信する REST API

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitIdleTimeout     = 10 * time.Minute
	sloWindow                = 5 * time.Minute
	sloRefreshInterval       = 15 * time.Second
)

func main() {
	logger, closeLog := initLogger()
	defer func() { _ = closeLog.Close() }()

	cfg := loadConfig(logger)
	version := getVersion()

	tp := tracing.NewProvider("feedstore", cfg.TraceSampleRatio)
	tracing.Init(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	store, err := feedUC.NewStore(context.Background(), jsonfile.NewFeedRepo(cfg.StorageFile), feedUC.Config{
		HistoryDays:       cfg.HistoryDays,
		MaxEntriesPerFeed: cfg.MaxEntriesPerFeed,
		GeneralFeedTitle:  cfg.GeneralFeedTitle,
	}, feedUC.WithLogger(logger))
	if err != nil {
		logger.Error("failed to load feed store", slog.Any("error", err))
		os.Exit(1)
	}

	components := setupServer(logger, cfg, store, version)
	if err := runServer(logger, cfg, components, version); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger from LOG_* variables and makes it the default.
func initLogger() (*slog.Logger, io.Closer) {
	logger, closer := logging.New(logging.OptionsFromEnv(), os.Stdout)
	slog.SetDefault(logger)
	return logger, closer
}

// loadConfig loads the server settings. A broken config file stops the
// process; rejected environment values are logged and counted.
func loadConfig(logger *slog.Logger) *config.StoreConfig {
	metrics := pkgconfig.NewConfigMetrics("feedstore", nil)

	cfg, fallbacks, err := config.LoadStoreConfig()
	if err != nil {
		metrics.RecordValidationError("config_file")
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	for _, f := range fallbacks {
		metrics.RecordFallback(f.Field)
		logger.Warn("configuration fallback", slog.String("field", f.Field), slog.String("detail", f.Message))
	}
	metrics.SetFallbackActive(len(fallbacks) > 0)
	metrics.RecordLoadTimestamp()

	logger.Info("configuration loaded",
		slog.String("storage_file", cfg.StorageFile),
		slog.Int("history_days", cfg.HistoryDays),
		slog.Int("max_entries_per_feed", cfg.MaxEntriesPerFeed),
		slog.Int("search_rate_limit", cfg.SearchRateLimit),
		slog.Float64("trace_sample_ratio", cfg.TraceSampleRatio),
		slog.Bool("csp_report_only", cfg.CSPReportOnly))
	return cfg
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds what runServer needs besides the handler.
type ServerComponents struct {
	Handler       http.Handler
	SearchLimiter *hhttp.RateLimiter
	SLO           *slo.Tracker
}

// setupServer registers routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.StoreConfig, store *feedUC.Store, version string) *ServerComponents {
	// 検索は1クライアントあたり SEARCH_RATE_LIMIT 回/分まで
	searchLimiter := hhttp.NewRateLimiter(cfg.SearchRateLimit)
	if cfg.SearchRateLimit <= 0 {
		logger.Warn("search rate limiting is DISABLED")
	}

	mux := http.NewServeMux()
	hfeed.Register(mux, store, searchLimiter.Limit)

	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Version: version})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	tracker := slo.NewTracker(sloWindow)

	return &ServerComponents{
		Handler:       applyMiddleware(logger, cfg, mux, tracker),
		SearchLimiter: searchLimiter,
		SLO:           tracker,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: Request ID → Recovery → Logging → Tracing → SLO → Metrics → Security headers → Input validation
func applyMiddleware(logger *slog.Logger, cfg *config.StoreConfig, handler http.Handler, tracker *slo.Tracker) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.InputValidation(cfg.MaxBodyBytes)(chain)
	chain = hhttp.SecurityHeaders(hhttp.SecurityHeadersConfig{
		Default:      hhttp.APIPolicy,
		PathPolicies: map[string]hhttp.Policy{"/swagger/": hhttp.SwaggerUIPolicy},
		ReportOnly:   cfg.CSPReportOnly,
	})(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracker.Middleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer serves until SIGINT/SIGTERM, then drains within ShutdownTimeout.
// Background loops share the server's lifetime.
func runServer(logger *slog.Logger, cfg *config.StoreConfig, components *ServerComponents, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		hhttp.StartRateLimitCleanup(gctx, components.SearchLimiter, rateLimitCleanupInterval, rateLimitIdleTimeout)
		return nil
	})

	g.Go(func() error {
		components.SLO.Run(gctx, sloRefreshInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
