package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rezervace/internal/entities"
)

// StorageKey names the single durable key the client persists under.
const StorageKey = "rezervace_demo_v1"

// Store keeps the booking map in one JSON file. The whole map is read once
// at open and rewritten on every change. A missing or corrupt file is an
// empty map, never an error.
type Store struct {
	path     string
	bookings map[string][]entities.Booking
}

func OpenStore(dir string) *Store {
	s := &Store{
		path:     filepath.Join(dir, StorageKey+".json"),
		bookings: map[string][]entities.Booking{},
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.bookings); err != nil || s.bookings == nil {
		s.bookings = map[string][]entities.Booking{}
	}
	return s
}

// Bookings hands out the recorded bookings keyed by slot ID.
func (s *Store) Bookings() map[string][]entities.Booking {
	return s.bookings
}

// Add appends a booking to its slot and rewrites the file.
func (s *Store) Add(b entities.Booking) error {
	s.bookings[b.SlotID] = append(s.bookings[b.SlotID], b)
	return s.flush()
}

func (s *Store) flush() error {
	raw, err := json.Marshal(s.bookings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
