package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/config"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/extract"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/resolve"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/routes"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "err", err)
	}

	logLevel := slog.LevelInfo
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
			slog.Warn("Invalid value for LOG_LEVEL environment variable")
		}
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(logHandler))

	cfg := config.Load()

	var resolver resolve.MediaResolver
	if cfg.WorkerURL != "" {
		slog.Info("Using delegated extraction worker", "endpoint", cfg.WorkerURL)
		resolver = resolve.NewWorkerResolver(cfg)
	} else {
		slog.Info("Using in-process extraction engine",
			"mode", cfg.OutputMode.String(),
			"proxy", cfg.ProxyURL != "",
			"cookies", cfg.CookiesFile != "")
		resolver = resolve.NewResolver(cfg, extract.NewYtdlpExtractor(cfg.EngineBinary))
	}

	router := routes.CreateMainRouter(resolver)

	slog.Info("Starting HTTP server", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		panic(err)
	}
}
