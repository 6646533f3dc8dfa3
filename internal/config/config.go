package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"rezervace/internal/slots"
)

// Config holds every externally supplied value. Presence is checked at
// startup with warnings only; a bare process still serves requests in demo
// mode with nothing configured.
type Config struct {
	Port       string
	OwnerEmail string
	OwnerPhone string

	SendGridAPIKey   string
	SendGridFromName string
	FromEmail        string

	SheetID           string
	GoogleClientEmail string
	GooglePrivateKey  string

	DatabaseURL string

	FrontendOrigin string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	SlotStart    int // minutes of day
	SlotEnd      int
	SlotInterval int
	MaxPeople    int
}

func Load() Config {
	cfg := Config{
		Port:       getenv("PORT", "3000"),
		OwnerEmail: getenv("OWNER_EMAIL", "dvorekboys@seznam.cz"),
		OwnerPhone: os.Getenv("OWNER_PHONE"),

		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SendGridFromName: getenv("SENDGRID_FROM_NAME", "Rezervace"),

		SheetID:           os.Getenv("GOOGLE_SHEET_ID"),
		GoogleClientEmail: os.Getenv("GOOGLE_CLIENT_EMAIL"),
		GooglePrivateKey:  strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		FrontendOrigin: getenv("FRONTEND_ORIGIN", "*"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		SlotStart:    getenvClock("SLOT_START", "18:30"),
		SlotEnd:      getenvClock("SLOT_END", "21:30"),
		SlotInterval: getenvInt("SLOT_INTERVAL_MIN", 5),
		MaxPeople:    getenvInt("MAX_PEOPLE", 8),
	}

	// The sender address defaults to the owner, as the hosted setup does.
	cfg.FromEmail = getenv("SENDGRID_FROM_EMAIL", cfg.OwnerEmail)

	if cfg.SendGridAPIKey == "" {
		log.Println("SENDGRID_API_KEY is not set, confirmation emails will not be sent")
	}
	if cfg.DatabaseURL == "" && (cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" || cfg.SheetID == "") {
		log.Println("Google Sheets credentials or GOOGLE_SHEET_ID not set (fine for development, required for production)")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getenvClock(key, fallback string) int {
	minutes, err := slots.ParseClock(getenv(key, fallback))
	if err != nil {
		log.Printf("Invalid value for %s: %v, using %s", key, err, fallback)
		minutes, _ = slots.ParseClock(fallback)
	}
	return minutes
}
