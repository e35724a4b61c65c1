package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/auth"
	"github.com/diegoclair/slack-break-bot/internal/config"
	"github.com/diegoclair/slack-break-bot/internal/database"
	"github.com/diegoclair/slack-break-bot/internal/domain/service"
	"github.com/diegoclair/slack-break-bot/internal/domain/shift"
	"github.com/diegoclair/slack-break-bot/internal/domain/timemath"
	"github.com/diegoclair/slack-break-bot/internal/handlers"
	"github.com/diegoclair/slack-break-bot/internal/notify"
	"github.com/diegoclair/slack-break-bot/migrator/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	catalog, err := shift.LoadCatalog(cfg.ShiftCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load shift catalog: %v", err)
	}
	log.Printf("Loaded %d shifts", len(catalog.List()))

	slackClient := slack.New(cfg.SlackBotToken)
	notifier := notify.NewSlack(slackClient, cfg.SlackNotifyChannel, nil)

	passcode, err := auth.NewPasscode(cfg.AdminPasscode)
	if err != nil {
		log.Fatalf("Failed to set up admin passcode: %v", err)
	}
	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.AdminTokenTTL)

	svc, err := service.NewInstance(database.NewInstance(db), catalog, notifier, passcode, cfg.TickInterval, loc)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	notifier.SetThemes(svc.Booking)

	svc.Ticker.Start()
	defer svc.Ticker.Stop()

	locale := timemath.LocaleByName(cfg.DisplayLocale)
	handler := handlers.New(slackClient, svc.Booking, svc.Admin, cfg.SlackSigningSecret, locale, loc)
	adminAPI := handlers.NewAdminAPI(svc.Admin, tokens, loc)

	r := chi.NewRouter()
	r.Use(handlers.RequestID)
	r.Use(handlers.Logger)
	r.Post("/slack/commands", handler.HandleSlashCommand)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	r.Mount("/api/admin", adminAPI.Routes())

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	<-stopCh
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
