package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calcconstru/calcconstru/internal/advisor"
	"github.com/calcconstru/calcconstru/internal/config"
	"github.com/calcconstru/calcconstru/internal/logging"
	"github.com/calcconstru/calcconstru/internal/server"
	"github.com/calcconstru/calcconstru/internal/store"
	"github.com/calcconstru/calcconstru/pkg/constants"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// buildStore connects the Postgres gateway when configured, falling back to
// the in-memory store so the calculator stays usable without a database.
func buildStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) store.Store {
	if !cfg.Enabled() {
		logger.Info("no database configured, using in-memory store",
			zap.String("op", "main"),
		)
		return store.NewMemory()
	}

	pg, err := store.NewPostgres(ctx, cfg.DSN(), logger)
	if err != nil {
		logger.Warn("database unavailable, falling back to in-memory store",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return store.NewMemory()
	}
	return pg
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if *configLocation != constants.DefaultConfigFile {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = config.Default()
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := buildStore(ctx, conf.Database, logger)
	defer st.Close()

	adv := advisor.NewClient(conf.Advisor.Endpoint, conf.Advisor.APIKey, conf.Advisor.Model, logger)
	if !adv.Enabled() {
		logger.Info("advisor disabled, analysis requests will return the fallback message",
			zap.String("op", "main"),
		)
	}

	srv := server.New(st, adv, logger)
	httpServer := srv.HTTPServer(conf.Server)

	go func() {
		logger.Info("server listening",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
			zap.String("version", server.Version),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down",
		zap.String("op", "main"),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
