package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swamyrayudu/localhunt-backend/internal/app"
	"github.com/swamyrayudu/localhunt-backend/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "prod" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	go func() {
		log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address))
		application.MustRun()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
