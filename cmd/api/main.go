package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"microboard/internal/config"
	pgRepo "microboard/internal/infra/adapter/persistence/postgres"
	"microboard/internal/infra/db"
	"microboard/internal/observability/logging"
	"microboard/internal/observability/tracing"

	artUC "microboard/internal/usecase/article"
	cmtUC "microboard/internal/usecase/comment"
	userUC "microboard/internal/usecase/user"

	hhttp "microboard/internal/handler/http"
	harticle "microboard/internal/handler/http/article"
	hauth "microboard/internal/handler/http/auth"
	hcomment "microboard/internal/handler/http/comment"
	"microboard/internal/handler/http/requestid"
	huser "microboard/internal/handler/http/user"
	authsvc "microboard/internal/service/auth"
)

func main() {
	configPath := flag.String("config", "configs/security.yaml", "path to security config")
	flag.Parse()

	logger := initLogger()

	secCfg, err := config.LoadSecurityConfig(*configPath)
	if err != nil {
		logger.Error("failed to load security config", slog.Any("error", err))
		os.Exit(1)
	}
	secret := validateJWTSecret(logger, secCfg)

	shutdownTracing := initTracing(logger)
	defer shutdownTracing()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, secCfg, secret)
	runServer(logger, handler)
}

// initLogger installs the process-wide JSON logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret refuses to start with a missing, short, or well-known
// secret and returns the validated value.
func validateJWTSecret(logger *slog.Logger, cfg *config.SecurityConfig) string {
	secret := cfg.JWTSecret()
	if secret == "" {
		logger.Error("JWT secret must be set", slog.String("env", cfg.Security.JWT.SecretEnv))
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT secret must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT secret must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return secret
}

// initTracing installs a tracer provider and the W3C propagator. Spans stay
// in-process unless an exporter is configured later; the returned function
// flushes on shutdown.
func initTracing(logger *slog.Logger) func() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}
}

// initDatabase opens the pool and applies the schema.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open(context.Background())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}

// setupServer wires repositories, services, handlers, and the middleware
// chain into the root handler.
func setupServer(logger *slog.Logger, database *sql.DB, secCfg *config.SecurityConfig, secret string) http.Handler {
	userRepo := pgRepo.NewUserRepo(database)
	articleRepo := pgRepo.NewArticleRepo(database)
	commentRepo := pgRepo.NewCommentRepo(database)

	codec := authsvc.NewCodec(secret, secCfg.AccessTTL(), secCfg.RefreshTTL())
	authService := &authsvc.Service{Users: userRepo, Codec: codec}

	userSvc := &userUC.Service{Users: userRepo, Auth: authService, BcryptCost: secCfg.BcryptCost()}
	articleSvc := &artUC.Service{Articles: articleRepo}
	commentSvc := &cmtUC.Service{Comments: commentRepo, Articles: articleRepo}

	limit, window := secCfg.RateLimit()
	credentialLimiter := hhttp.NewRateLimiter(limit, window)

	mux := http.NewServeMux()
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	huser.Register(mux, userSvc, authService, credentialLimiter.Limit)
	harticle.Register(mux, articleSvc)
	hcomment.Register(mux, commentSvc)

	authorizer := hauth.NewAuthorizer(codec, userRepo)
	return applyMiddleware(logger, authorizer.Middleware(mux))
}

// applyMiddleware builds the chain, in request order:
// request id → tracing → recovery → logging → body limit → metrics → authz.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer serves until SIGINT/SIGTERM, then drains with a timeout.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + func() string {
		if port := os.Getenv("PORT"); port != "" {
			return port
		}
		return "8080"
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
