package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coverdesk/coverdesk-backend/infra"
	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/usecases"
	"github.com/coverdesk/coverdesk-backend/utils"
)

type AppConfiguration struct {
	env      string
	port     string
	pgConfig utils.PGConfig
}

func runServer(ctx context.Context, conf AppConfiguration, pool *pgxpool.Pool, logger *slog.Logger) error {
	uc := usecases.NewUsecases(repositories.NewRepositories(pool))

	router := initRouter(ctx, conf, uc)
	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", conf.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	conf := AppConfiguration{
		env:  utils.GetStringEnv("ENV", "development"),
		port: utils.GetStringEnv("PORT", "8080"),
		pgConfig: utils.PGConfig{
			Hostname:         utils.GetStringEnv("PG_HOSTNAME", "localhost"),
			Port:             utils.GetStringEnv("PG_PORT", "5432"),
			User:             utils.GetStringEnv("PG_USER", "postgres"),
			Password:         utils.GetStringEnv("PG_PASSWORD", ""),
			Database:         utils.GetStringEnv("PG_DATABASE", "coverdesk"),
			ConnectionString: utils.GetStringEnv("DATABASE_URL", ""),
		},
	}

	loggingFormat := "text"
	if conf.env != "development" {
		loggingFormat = "json"
	}
	logger := utils.NewLogger(loggingFormat)

	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the api server")
	shouldRunSeed := flag.Bool("seed", false, "Seed sample clients")
	flag.Parse()

	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(ctx, conf.pgConfig, logger); err != nil {
			logger.ErrorContext(ctx, "failed to run migrations", "error", err.Error())
			return
		}
	}

	if *shouldRunSeed || *shouldRunServer {
		pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConfig.GetConnectionString())
		if err != nil {
			logger.ErrorContext(ctx, "failed to create connection pool", "error", err.Error())
			return
		}
		defer pool.Close()

		if *shouldRunSeed {
			uc := usecases.NewUsecases(repositories.NewRepositories(pool))
			seedUseCase := uc.NewSeedUseCase()
			if err := seedUseCase.SeedSampleClients(ctx); err != nil {
				logger.ErrorContext(ctx, "failed to seed sample clients", "error", err.Error())
				return
			}
		}

		if *shouldRunServer {
			if err := runServer(ctx, conf, pool, logger); err != nil {
				logger.ErrorContext(ctx, "server shutdown failed", "error", err.Error())
			}
		}
	}
}
