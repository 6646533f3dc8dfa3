package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresLedger appends booking rows to a bookings table. Unlike the
// Sheets backend it can also report back, so the daily summary job runs
// against it.
type PostgresLedger struct {
	DB *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{DB: db}
}

func (l *PostgresLedger) Append(ctx context.Context, row Row) error {
	query := `
	INSERT INTO bookings (created_at, slot, name, email, people)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := l.DB.ExecContext(ctx, query,
		row.Timestamp.UTC(), row.Slot, row.Name, row.Email, row.People)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (l *PostgresLedger) CountSince(ctx context.Context, since time.Time) (int, int, error) {
	query := `
	SELECT COUNT(*), COALESCE(SUM(people), 0)
	FROM bookings
	WHERE created_at >= $1
	`

	var bookings, guests int
	err := l.DB.QueryRowContext(ctx, query, since.UTC()).Scan(&bookings, &guests)
	if err != nil {
		return 0, 0, fmt.Errorf("count bookings: %w", err)
	}
	return bookings, guests, nil
}
