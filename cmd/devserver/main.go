package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/insula/internal/buildinfo"
	"github.com/dmitrijs2005/insula/internal/devserver"
	"github.com/dmitrijs2005/insula/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg, err := devserver.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	svc := devserver.NewService(devserver.NewMemoryRepository(), cfg.JWTSecret, cfg.TokenTTL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           devserver.NewRouter(svc, logger, devserver.Options{AuthRPS: cfg.AuthRPS, AuthBurst: cfg.AuthBurst}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(ctx, "dev server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "forced shutdown", "error", err)
	}
}
