package ledger

import (
	"context"
	"log"
	"sync"
	"time"
)

// DemoLedger stands in when neither Postgres nor Google Sheets is
// configured. Rows are kept in memory and logged so a development setup
// still shows what would have been stored.
type DemoLedger struct {
	mu   sync.Mutex
	rows []Row
}

func NewDemoLedger() *DemoLedger {
	return &DemoLedger{}
}

func (l *DemoLedger) Append(_ context.Context, row Row) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rows = append(l.rows, row)
	log.Printf("Ledger not configured, row kept in memory only: %s | %s | %s | %d",
		row.Slot, row.Name, row.Email, row.People)
	return nil
}

func (l *DemoLedger) CountSince(_ context.Context, since time.Time) (int, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings, guests := 0, 0
	for _, row := range l.rows {
		if row.Timestamp.Before(since) {
			continue
		}
		bookings++
		guests += row.People
	}
	return bookings, guests, nil
}

// Rows returns a copy of everything appended so far.
func (l *DemoLedger) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}
