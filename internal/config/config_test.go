package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "OWNER_EMAIL", "SENDGRID_API_KEY", "SENDGRID_FROM_EMAIL",
		"GOOGLE_SHEET_ID", "GOOGLE_CLIENT_EMAIL", "GOOGLE_PRIVATE_KEY",
		"DATABASE_URL", "FRONTEND_ORIGIN",
		"SLOT_START", "SLOT_END", "SLOT_INTERVAL_MIN", "MAX_PEOPLE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "dvorekboys@seznam.cz", cfg.OwnerEmail)
	assert.Equal(t, cfg.OwnerEmail, cfg.FromEmail)
	assert.Equal(t, "*", cfg.FrontendOrigin)
	assert.Equal(t, 18*60+30, cfg.SlotStart)
	assert.Equal(t, 21*60+30, cfg.SlotEnd)
	assert.Equal(t, 5, cfg.SlotInterval)
	assert.Equal(t, 8, cfg.MaxPeople)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SLOT_START", "10:00")
	t.Setenv("SLOT_END", "12:00")
	t.Setenv("SLOT_INTERVAL_MIN", "15")
	t.Setenv("MAX_PEOPLE", "4")
	t.Setenv("SENDGRID_FROM_EMAIL", "noreply@example.com")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 600, cfg.SlotStart)
	assert.Equal(t, 720, cfg.SlotEnd)
	assert.Equal(t, 15, cfg.SlotInterval)
	assert.Equal(t, 4, cfg.MaxPeople)
	assert.Equal(t, "noreply@example.com", cfg.FromEmail)
}

func TestLoad_PrivateKeyUnescaped(t *testing.T) {
	t.Setenv("GOOGLE_PRIVATE_KEY", `-----BEGIN\nKEY\n-----END`)

	cfg := Load()
	assert.Equal(t, "-----BEGIN\nKEY\n-----END", cfg.GooglePrivateKey)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SLOT_START", "25:99")
	t.Setenv("SLOT_INTERVAL_MIN", "often")

	cfg := Load()
	assert.Equal(t, 18*60+30, cfg.SlotStart)
	assert.Equal(t, 5, cfg.SlotInterval)
}
