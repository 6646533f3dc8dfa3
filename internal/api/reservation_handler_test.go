package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezervace/internal/ledger"
	"rezervace/internal/service"
)

type fakeLedger struct {
	rows []ledger.Row
	err  error
}

func (f *fakeLedger) Append(_ context.Context, row ledger.Row) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakeMailer struct {
	sent []service.Message
	err  error
}

func (f *fakeMailer) Send(msg service.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newHandler(led *fakeLedger, mailer service.Mailer) *ReservationHandler {
	svc := service.NewBookingService(led, mailer, nil, "dvorekboys@seznam.cz", 8)
	return NewReservationHandler(svc)
}

func postReserve(t *testing.T, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reserve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Reserve(rec, req)
	return rec
}

func TestReserve_Success(t *testing.T) {
	led := &fakeLedger{}
	mailer := &fakeMailer{}
	h := newHandler(led, mailer)

	rec := postReserve(t, h, `{"name":"Jan Novák","email":"jan@example.com","people":2,"slot":"18:30","slotId":"18-30"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ReserveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.True(t, resp.Notified)

	assert.Len(t, led.rows, 1)
	assert.Len(t, mailer.sent, 2)
}

func TestReserve_InvalidEmail(t *testing.T) {
	led := &fakeLedger{}
	mailer := &fakeMailer{}
	h := newHandler(led, mailer)

	rec := postReserve(t, h, `{"name":"Jan","email":"not-an-email","people":2,"slot":"18:30","slotId":"18-30"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Invalid data", resp.Error)

	assert.Empty(t, led.rows, "no ledger row on validation failure")
	assert.Empty(t, mailer.sent, "no messages on validation failure")
}

func TestReserve_MalformedBody(t *testing.T) {
	h := newHandler(&fakeLedger{}, &fakeMailer{})

	rec := postReserve(t, h, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid data")
}

func TestReserve_MailerAbsent(t *testing.T) {
	led := &fakeLedger{}
	h := newHandler(led, nil)

	rec := postReserve(t, h, `{"name":"Jan Novák","email":"jan@example.com","people":2,"slot":"18:30","slotId":"18-30"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ReserveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.False(t, resp.Notified, "ledger-only success is flagged")
	assert.Len(t, led.rows, 1)
}

func TestReserve_LedgerFailure(t *testing.T) {
	led := &fakeLedger{err: errors.New("append failed")}
	mailer := &fakeMailer{}
	h := newHandler(led, mailer)

	rec := postReserve(t, h, `{"name":"Jan Novák","email":"jan@example.com","people":2,"slot":"18:30","slotId":"18-30"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "server error", resp.Error)
	assert.Empty(t, mailer.sent)
}

func TestReserve_MailFailure(t *testing.T) {
	led := &fakeLedger{}
	h := newHandler(led, &fakeMailer{err: errors.New("provider down")})

	rec := postReserve(t, h, `{"name":"Jan Novák","email":"jan@example.com","people":2,"slot":"18:30","slotId":"18-30"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "server error")
	assert.Len(t, led.rows, 1, "row stays in the ledger even though the caller sees a failure")
}

func TestHealth(t *testing.T) {
	h := newHandler(&fakeLedger{}, &fakeMailer{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
