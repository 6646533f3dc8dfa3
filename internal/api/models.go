package api

// ReserveResponse acknowledges an accepted booking. Notified is false when
// the booking was recorded but the messaging provider was not configured.
type ReserveResponse struct {
	OK       bool `json:"ok"`
	Notified bool `json:"notified"`
}

// ErrorResponse carries the short human-readable failure string; the HTTP
// status code distinguishes validation rejection from server failure.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	OK bool `json:"ok"`
}
