package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvbakke/wcag-reviews/config"
	deps "github.com/mvbakke/wcag-reviews/internal/deps"
	api "github.com/mvbakke/wcag-reviews/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	if err := deps.DB.InitSchema(context.Background()); err != nil {
		log.Panicln("failed to initialize database schema", "error", err)
	}

	if cfg.ScreenshotBaseURL != "" {
		probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if !deps.Screenshot.Reachable(probeCtx) {
			log.Println("screenshot service unreachable, previews fall back to placeholder")
		}
		cancel()
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}
	go deps.Feed.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Draining for", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown error:", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
