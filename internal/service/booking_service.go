package service

import (
	"context"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"rezervace/internal/entities"
	apperrors "rezervace/internal/errors"
	"rezervace/internal/ledger"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// BookingService runs the intake pipeline for one submission:
// validate, append to the ledger, notify the customer, notify the owner.
// The first failing step aborts the rest; nothing is rolled back.
type BookingService struct {
	Ledger     ledger.Ledger
	Mailer     Mailer
	SMS        *TwilioSMS
	OwnerEmail string
	MaxPeople  int
}

func NewBookingService(led ledger.Ledger, mailer Mailer, sms *TwilioSMS, ownerEmail string, maxPeople int) *BookingService {
	return &BookingService{
		Ledger:     led,
		Mailer:     mailer,
		SMS:        sms,
		OwnerEmail: ownerEmail,
		MaxPeople:  maxPeople,
	}
}

// Result reports what an accepted submission accomplished. Notified is
// false when the messaging provider was not configured and the booking
// degraded to a ledger-only success.
type Result struct {
	Notified bool
}

// SubmitBooking validates the request and, when it is good, appends a row
// to the ledger and dispatches the confirmation pair. Validation failures
// come back as *errors.ValidationError with no side effects; collaborator
// failures as *errors.DependencyError.
func (s *BookingService) SubmitBooking(ctx context.Context, req entities.BookingRequest) (*Result, error) {
	booking, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	row := ledger.Row{
		Timestamp: booking.CreatedAt,
		Slot:      booking.Slot,
		Name:      booking.Name,
		Email:     booking.Email,
		People:    booking.People,
	}
	if err := s.Ledger.Append(ctx, row); err != nil {
		log.Printf("Error appending booking to ledger: %v", err)
		return nil, &apperrors.DependencyError{Step: "ledger append", Err: err}
	}

	if s.Mailer == nil {
		log.Println("Messaging provider not configured, confirmation emails skipped")
		log.Printf("Customer email would be: %+v", customerMessage(booking))
		log.Printf("Owner email would be: %+v", ownerMessage(booking, s.OwnerEmail))
		s.alertOwner(booking)
		return &Result{Notified: false}, nil
	}

	if err := s.Mailer.Send(customerMessage(booking)); err != nil {
		log.Printf("Error sending customer confirmation: %v", err)
		return nil, &apperrors.DependencyError{Step: "customer email", Err: err}
	}
	if err := s.Mailer.Send(ownerMessage(booking, s.OwnerEmail)); err != nil {
		log.Printf("Error sending owner copy: %v", err)
		return nil, &apperrors.DependencyError{Step: "owner email", Err: err}
	}

	s.alertOwner(booking)
	return &Result{Notified: true}, nil
}

// validate turns the raw payload into a typed booking or rejects it.
// Partially validated data never leaves this function.
func (s *BookingService) validate(req entities.BookingRequest) (*entities.Booking, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" || email == "" || req.Slot == "" {
		return nil, apperrors.NewValidationError("invalid-input")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("invalid-input")
	}

	p := req.People
	if math.IsNaN(p) || math.IsInf(p, 0) || p != math.Trunc(p) {
		return nil, apperrors.NewValidationError("invalid-input")
	}
	if p < 1 || p > float64(s.MaxPeople) {
		return nil, apperrors.NewValidationError("invalid-input")
	}

	return &entities.Booking{
		Slot:      req.Slot,
		SlotID:    req.SlotID,
		Name:      name,
		Email:     email,
		People:    int(p),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *BookingService) alertOwner(b *entities.Booking) {
	if s.SMS == nil {
		return
	}
	if err := s.SMS.Alert(ownerAlertSMS(b)); err != nil {
		log.Printf("Booking for %s recorded, but owner SMS failed: %v", b.Slot, err)
	}
}
