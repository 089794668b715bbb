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

	"github.com/dualinkhq/dualink-api/internal/database"
	"github.com/dualinkhq/dualink-api/internal/server"
	"github.com/dualinkhq/dualink-api/pkg/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.LoadConfig()

	db := database.New(cfg)
	defer db.Close()

	srv := server.NewServer(db, cfg)
	httpServer := srv.HTTPServer()

	srv.StartBackgroundJobs()

	go func() {
		log.Printf("Server listening on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	srv.StopBackgroundJobs()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}
