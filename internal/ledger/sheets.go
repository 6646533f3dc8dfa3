package ledger

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const sheetRange = "Sheet1!A:E"

// SheetsLedger appends booking rows to a Google spreadsheet using a
// service-account credential.
type SheetsLedger struct {
	svc     *sheets.Service
	sheetID string
}

// NewSheetsLedger authenticates against the Sheets API with the given
// service-account email and private key (PEM, newlines already unescaped).
func NewSheetsLedger(ctx context.Context, clientEmail, privateKey, sheetID string) (*SheetsLedger, error) {
	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsLedger{svc: svc, sheetID: sheetID}, nil
}

func (l *SheetsLedger) Append(ctx context.Context, row Row) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{
			row.Timestamp.UTC().Format(time.RFC3339),
			row.Slot,
			row.Name,
			row.Email,
			row.People,
		}},
	}

	_, err := l.svc.Spreadsheets.Values.Append(l.sheetID, sheetRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append: %w", err)
	}
	return nil
}
