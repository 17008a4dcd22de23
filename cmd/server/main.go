package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/linoawt/Linostudiong/internal/auth"
	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/config"
	"github.com/linoawt/Linostudiong/internal/content"
	"github.com/linoawt/Linostudiong/internal/enrich"
	"github.com/linoawt/Linostudiong/internal/handler"
	"github.com/linoawt/Linostudiong/internal/leads"
	"github.com/linoawt/Linostudiong/internal/relay"
	"github.com/linoawt/Linostudiong/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := cache.Open(cfg.CachePath)
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	defer db.Close()

	if err := db.CleanExpiredSessions(context.Background()); err != nil {
		log.Printf("session cleanup: %v", err)
	}

	client := store.New(cfg.SupabaseURL, cfg.SupabaseKey)
	gate := auth.NewGate(cfg.AdminKey, client.Auth(), db)

	loader := content.NewLoader(client, db)
	manager := content.NewManager(loader.Load(context.Background()))

	var enricher leads.Enricher
	if cfg.GeminiAPIKey != "" {
		enricher = enrich.New("https://generativelanguage.googleapis.com", cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	var notifier leads.Notifier
	if cfg.RelayURL != "" {
		notifier = relay.New(cfg.RelayURL)
	}
	pipeline := leads.NewPipeline(client, db, enricher, notifier)

	h := handler.New(manager, gate, client, db, pipeline, cfg.TemplatesDir, cfg.CSRFSecret, cfg.CookieDomain)
	router := h.Router()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		pipeline.Wait()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("Starting server at http://%s", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), router); err != nil {
		log.Fatalf("server: %v", err)
	}
}
