package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/VinothKuppanna/gastimator/configs"
	"github.com/VinothKuppanna/gastimator/di"
	"github.com/VinothKuppanna/gastimator/internal/middleware/logging"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "service", "gastimator")

	if err := godotenv.Load(); err != nil {
		_ = level.Info(logger).Log("msg", "no .env file found, using environment variables")
	}

	cfg, err := loadConfig()
	if err != nil {
		_ = level.Error(logger).Log("msg", "failed to load config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, allowLevel(cfg.LogLevel))
	_ = level.Info(logger).Log("msg", "config loaded", "config", cfg.String())

	var publisher logging.Publisher
	if len(cfg.NsqdAddress) > 0 {
		producer, err := logging.NewProducer(cfg.NsqdAddress)
		if err != nil {
			_ = level.Warn(logger).Log("msg", "request log archiving disabled", "nsqd", cfg.NsqdAddress, "err", err)
		} else {
			defer producer.Stop()
			publisher = producer
		}
	}

	handler, err := di.InitHTTPHandler(cfg, logger, publisher)
	if err != nil {
		_ = level.Error(logger).Log("msg", "failed to initialise handlers", "err", err)
		os.Exit(1)
	}

	// write timeout leaves room for the distance lookup timeout
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.LookupTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		_ = level.Info(logger).Log("msg", "HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			_ = level.Error(logger).Log("msg", "HTTP server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	_ = level.Info(logger).Log("msg", "shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		_ = level.Error(logger).Log("msg", "HTTP server forced shutdown", "err", err)
	}
	_ = level.Info(logger).Log("msg", "stopped")
}

func loadConfig() (*configs.Config, error) {
	cfg := configs.New()
	if configFile := os.Getenv("CONFIG_FILE"); len(configFile) > 0 {
		if err := cfg.Read(configFile); err != nil {
			return nil, err
		}
	}
	if secret := os.Getenv("SERVER_CONFIG_SECRET"); len(secret) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := cfg.ReadServerConfig(ctx, secret); err != nil {
			return nil, err
		}
	}
	if err := cfg.ReadEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func allowLevel(name string) level.Option {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}
