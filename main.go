package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/config"
	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/db"
	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/handlers"
	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/imagekit"
)

func main() {
	cfg := config.Load()

	authorizer, err := imagekit.NewAuthorizer(cfg.ImageKitPrivateKey, imagekit.DefaultTTL)
	if err != nil {
		log.Fatalf("upload authorizer: %v", err)
	}

	ctx := context.Background()
	store, err := db.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	r := handlers.NewRouter(cfg, store, authorizer)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
