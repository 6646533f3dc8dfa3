package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"rezervace/internal/ledger"
)

// JobService owns the scheduled work. Today that is one job: a nightly
// summary email to the owner, available only when the active ledger can
// report what it stored.
type JobService struct {
	Reporter   ledger.Reporter
	Mailer     Mailer
	OwnerEmail string
}

func NewJobService(rep ledger.Reporter, mailer Mailer, ownerEmail string) *JobService {
	return &JobService{Reporter: rep, Mailer: mailer, OwnerEmail: ownerEmail}
}

// SendDailySummary mails the owner the booking count and guest total since
// midnight UTC. Days without bookings send nothing.
func (s *JobService) SendDailySummary() error {
	log.Println("Cron Job: building daily booking summary...")

	since := time.Now().UTC().Truncate(24 * time.Hour)
	bookings, guests, err := s.Reporter.CountSince(context.Background(), since)
	if err != nil {
		return fmt.Errorf("cron job: failed to count bookings: %w", err)
	}

	if bookings == 0 {
		log.Println("Cron Job: no bookings today, summary skipped.")
		return nil
	}

	if s.Mailer == nil {
		log.Printf("Cron Job: %d bookings today (%d guests), but no mailer configured.", bookings, guests)
		return nil
	}

	msg := Message{
		To:      s.OwnerEmail,
		Subject: fmt.Sprintf("Denní přehled rezervací: %d", bookings),
		Text:    fmt.Sprintf("Dnes přibylo %d rezervací pro celkem %d osob.", bookings, guests),
	}
	if err := s.Mailer.Send(msg); err != nil {
		return fmt.Errorf("cron job: failed to send summary email: %w", err)
	}

	log.Printf("Cron Job: summary sent, %d bookings, %d guests.", bookings, guests)
	return nil
}
