package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deckhaus/storesync/internal/cache"
	"github.com/deckhaus/storesync/internal/config"
	"github.com/deckhaus/storesync/internal/database"
	"github.com/deckhaus/storesync/internal/handlers"
	"github.com/deckhaus/storesync/internal/models"
	"github.com/deckhaus/storesync/internal/remote"
	"github.com/deckhaus/storesync/internal/repository"
	"github.com/deckhaus/storesync/internal/syncer"
	"github.com/deckhaus/storesync/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Collection{},
		&models.Customer{},
		&models.Order{},
		&models.Promotion{},
		&models.Tutorial{},
		&models.AdminUser{},
		&models.SyncLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	client := remote.NewClient(remote.Config{
		Store:       cfg.Platform.Store,
		AccessToken: cfg.Platform.AccessToken,
		APIVersion:  cfg.Platform.APIVersion,
		Timeout:     cfg.Platform.Timeout,
	})
	paginator := remote.NewPaginator(client)

	repo := repository.New(db)

	kindTTLs := make(map[models.EntityKind]time.Duration, len(cfg.Sync.KindTTLs))
	for kind, ttl := range cfg.Sync.KindTTLs {
		parsed, err := models.ParseEntityKind(kind)
		if err != nil {
			log.Printf("Ignoring cache TTL override for unknown kind %q", kind)
			continue
		}
		kindTTLs[parsed] = ttl
	}

	orch := syncer.New(paginator, repo, cache.New(), syncer.Config{
		PageSize:     cfg.Sync.PageSize,
		DefaultLimit: cfg.Sync.DefaultLimit,
		DefaultTTL:   cfg.Sync.DefaultTTL,
		KindTTLs:     kindTTLs,
	})

	hub := websocket.NewHub()
	go hub.Run()

	orch.OnRunComplete(func(summary *syncer.Summary) {
		hub.Broadcast("sync_completed", summary)
	})

	var scheduler *syncer.Scheduler
	if cfg.Sync.AutoEnabled {
		scheduler = syncer.NewScheduler(orch, cfg.Sync.Interval, cfg.Sync.DefaultLimit)
		scheduler.Start()
	} else {
		log.Println("Automatic sync disabled (SYNC_AUTO_ENABLED=false)")
	}

	router := handlers.NewRouter(cfg, db, repo, orch, hub)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Server stopped")
}
