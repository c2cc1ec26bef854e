// Command gateway runs the HTTP gateway for the social layer: registration,
// session login/logout and posts, persisted to a single flat JSON document.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/feedworks/social_layer/internal/app"
	"github.com/feedworks/social_layer/internal/app/storage/jsonfile"
	"github.com/feedworks/social_layer/internal/config"
	"github.com/feedworks/social_layer/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	appLog := logger.NewDefault("gateway")

	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The document must exist and parse; the process cannot start without it.
	store, err := jsonfile.Open(cfg.DatabasePath, appLog)
	if err != nil {
		log.Fatalf("Failed to open document %s: %v", cfg.DatabasePath, err)
	}

	application, err := app.New(app.Stores{
		Users:    store,
		Sessions: store,
		Posts:    store,
	}, appLog)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	handler := newHandler(application, cfg, appLog)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.WithField("addr", cfg.Addr()).Info("gateway listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	appLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.WithError(err).Error("shutdown error")
	}
}
