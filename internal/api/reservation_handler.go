package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"rezervace/internal/entities"
	apperrors "rezervace/internal/errors"
	"rezervace/internal/service"
)

type ReservationHandler struct {
	Service *service.BookingService
}

func NewReservationHandler(svc *service.BookingService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid data"})
		return
	}

	result, err := h.Service.SubmitBooking(r.Context(), req)
	if err != nil {
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid data"})
			return
		}
		log.Printf("Error /api/reserve: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "server error"})
		return
	}

	writeJSON(w, http.StatusOK, ReserveResponse{OK: true, Notified: result.Notified})
}

func (h *ReservationHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
