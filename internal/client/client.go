package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"rezervace/internal/entities"
	"rezervace/internal/slots"
)

// State is the client-side submission phase. A submission moves
// Idle → Submitting → {Success, PartialSuccess, Error}; the terminal
// success states are dismissed after DisplayDelay, Error waits for an
// explicit Dismiss.
type State string

const (
	StateIdle           State = "idle"
	StateSubmitting     State = "submitting"
	StateSuccess        State = "success"
	StatePartialSuccess State = "partial"
	StateError          State = "error"
)

// DisplayDelay is how long a terminal success message stays up before the
// form returns to Idle.
const DisplayDelay = 900 * time.Millisecond

var (
	ErrInvalidForm      = errors.New("name or email is invalid")
	ErrCapacityExceeded = errors.New("party does not fit the remaining seats")
	ErrBusy             = errors.New("a submission is already in progress")
)

// The browser form uses its own, slightly stricter pattern than the
// server does.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Client drives one booking form: it owns the local optimistic record and
// issues at most one submission at a time.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Store    *Store
	Capacity int

	// OnState observes every transition; used by the CLI for display and
	// by tests to assert the exact sequence.
	OnState func(state State, message string)

	state   State
	message string
}

func New(baseURL string, store *Store, capacity int) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     http.DefaultClient,
		Store:    store,
		Capacity: capacity,
		state:    StateIdle,
	}
}

func (c *Client) State() State    { return c.state }
func (c *Client) Message() string { return c.message }

// Dismiss returns the form to Idle from any terminal state.
func (c *Client) Dismiss() {
	c.setState(StateIdle, "")
}

// Submit validates the form locally, records the booking optimistically
// and sends it to the intake service. The local record is kept regardless
// of the server outcome.
func (c *Client) Submit(ctx context.Context, slot slots.Slot, name, email string, people int) error {
	if c.state == StateSubmitting {
		return ErrBusy
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !emailPattern.MatchString(email) {
		c.setState(StateError, "Vyplňte prosím jméno a platný e-mail.")
		return ErrInvalidForm
	}

	// Advisory only; the server does not re-check capacity.
	free := slots.Availability(slot.ID, c.Capacity, c.Store.Bookings())
	if people > free {
		c.setState(StateError, fmt.Sprintf("Ve vybraném slotu zbývá %d míst.", free))
		return ErrCapacityExceeded
	}

	booking := entities.Booking{
		ID:        time.Now().UnixMilli(),
		Slot:      slot.Time,
		SlotID:    slot.ID,
		Name:      name,
		Email:     email,
		People:    people,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.Store.Add(booking); err != nil {
		log.Printf("Could not persist local booking record: %v", err)
	}

	c.setState(StateSubmitting, "Odesílám potvrzení...")

	resp, err := c.send(ctx, booking)
	if err != nil {
		c.setState(StateError, "Chyba při odesílání rezervace. Zkuste to prosím znovu.")
		return err
	}

	if resp.OK && (resp.Notified == nil || *resp.Notified) {
		c.setState(StateSuccess, "Rezervace byla úspěšně vytvořena. Potvrzení bylo odesláno e-mailem.")
	} else {
		c.setState(StatePartialSuccess, "Rezervace uložena, ale odeslání e-mailu se nezdařilo.")
	}
	return nil
}

type serverResponse struct {
	OK       bool   `json:"ok"`
	Notified *bool  `json:"notified"`
	Error    string `json:"error"`
}

func (c *Client) send(ctx context.Context, b entities.Booking) (*serverResponse, error) {
	body, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/reserve", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out serverResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (c *Client) setState(state State, message string) {
	c.state = state
	c.message = message
	if c.OnState != nil {
		c.OnState(state, message)
	}
}
