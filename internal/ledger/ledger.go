package ledger

import (
	"context"
	"time"
)

// Row is one appended booking record.
type Row struct {
	Timestamp time.Time
	Slot      string
	Name      string
	Email     string
	People    int
}

// Ledger is the durable, append-only record of accepted bookings. The
// service treats it as fire-and-forget: a nil error is the only
// confirmation a row was stored.
type Ledger interface {
	Append(ctx context.Context, row Row) error
}

// Reporter is implemented by ledgers that can count back what they stored.
// Backends that cannot (Google Sheets) simply do not satisfy it.
type Reporter interface {
	CountSince(ctx context.Context, since time.Time) (bookings, guests int, err error)
}
