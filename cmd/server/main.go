package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"rezervace/internal/api"
	"rezervace/internal/config"
	"rezervace/internal/ledger"
	"rezervace/internal/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	led := buildLedger(cfg)

	var mailer service.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = service.NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.SendGridFromName)
	}

	var sms *service.TwilioSMS
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" && cfg.OwnerPhone != "" {
		sms = service.NewTwilioSMS(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.OwnerPhone)
	}

	svc := service.NewBookingService(led, mailer, sms, cfg.OwnerEmail, cfg.MaxPeople)
	handler := api.NewReservationHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/reserve", handler.Reserve).Methods("POST")
	r.HandleFunc("/health", handler.Health).Methods("GET")

	startJobs(led, mailer, cfg.OwnerEmail)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.FrontendOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}

// buildLedger picks the first configured backend: Postgres, then Google
// Sheets, then the in-memory demo ledger.
func buildLedger(cfg config.Config) ledger.Ledger {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		return ledger.NewPostgresLedger(db)
	}

	if cfg.SheetID != "" && cfg.GoogleClientEmail != "" && cfg.GooglePrivateKey != "" {
		led, err := ledger.NewSheetsLedger(context.Background(), cfg.GoogleClientEmail, cfg.GooglePrivateKey, cfg.SheetID)
		if err != nil {
			log.Fatalf("Failed to init Google Sheets ledger: %v", err)
		}
		return led
	}

	log.Println("No ledger configured, bookings will be kept in memory only")
	return ledger.NewDemoLedger()
}

// startJobs schedules the nightly owner summary when the ledger can
// report what it stored.
func startJobs(led ledger.Ledger, mailer service.Mailer, ownerEmail string) {
	rep, ok := led.(ledger.Reporter)
	if !ok {
		log.Println("Ledger backend cannot report, daily summary job disabled")
		return
	}

	jobs := service.NewJobService(rep, mailer, ownerEmail)
	c := cron.New()
	if _, err := c.AddFunc("0 22 * * *", func() {
		if err := jobs.SendDailySummary(); err != nil {
			log.Printf("Error running daily summary: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule daily summary: %v", err)
	}
	c.Start()
}
