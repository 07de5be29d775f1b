package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wolfyek/client-gallery/internal/api"
	"github.com/wolfyek/client-gallery/internal/api/handlers"
	"github.com/wolfyek/client-gallery/internal/archive"
	"github.com/wolfyek/client-gallery/internal/config"
	"github.com/wolfyek/client-gallery/internal/nextcloud"
	"github.com/wolfyek/client-gallery/internal/repositories"
)

// @title Client Gallery API
// @version 1.0
// @description Password-gated photo galleries with Nextcloud share imports.
// @BasePath /api/v1
func main() {
	cfg := config.Envs

	db := repositories.ConnectDatabase(cfg.DBURL)
	galleries := repositories.NewGalleryStore(db)
	logs := repositories.NewLogStore(db)
	uploads := repositories.NewR2Storage(cfg.R2)
	if uploads == nil {
		log.Println("R2 not configured, admin uploads disabled")
	}

	ncClient := nextcloud.NewClient(&http.Client{Timeout: cfg.NextcloudTimeout})
	packager := archive.NewPackager(nil)

	h := handlers.New(galleries, logs, ncClient, packager, uploads)
	mux := api.SetupRouter(h)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		// Write timeout stays generous so ZIP archives can stream.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting client-gallery server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
