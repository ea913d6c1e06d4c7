// Package api exposes the box office over HTTP.
// It provides REST endpoints for listing, reserving, and releasing seats.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/seating"
)

// Handler provides HTTP endpoints for box office operations.
type Handler struct {
	boxOffice seating.BoxOffice
}

// NewHandler creates a new API handler wrapping the given BoxOffice.
func NewHandler(boxOffice seating.BoxOffice) *Handler {
	return &Handler{boxOffice: boxOffice}
}

// Routes returns an http.Handler with all API routes registered.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	// Seats
	mux.HandleFunc("GET /seats", h.List)
	mux.HandleFunc("GET /seats/{number}", h.Get)
	mux.HandleFunc("POST /seats/{number}/reserve", h.Reserve)
	mux.HandleFunc("DELETE /seats/{number}/reservation", h.Release)

	// Health check
	mux.HandleFunc("GET /health", h.Health)

	return mux
}

// === Request/Response Types ===

// ReserveSeatRequest is the request body for reserving a seat.
type ReserveSeatRequest struct {
	// UserID identifies who the seat is for (required).
	UserID string `json:"user_id"`
}

// SeatResponse is the response body for a single seat.
type SeatResponse struct {
	Number        int       `json:"number"`
	UserID        string    `json:"user_id"`
	ReservationID string    `json:"reservation_id"`
	ReservedAt    time.Time `json:"reserved_at"`
}

// ListSeatsResponse is the response body for listing reserved seats.
type ListSeatsResponse struct {
	Seats    []SeatResponse `json:"seats"`
	Total    int            `json:"total"`
	Capacity int            `json:"capacity"`
}

// HealthResponse is the response body for health checks.
type HealthResponse struct {
	Status   string `json:"status"`
	Capacity int    `json:"capacity,omitempty"`
	Reserved int    `json:"reserved,omitempty"`
}

// ErrorResponse is the response body for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func seatToResponse(seat seating.Seat) SeatResponse {
	return SeatResponse{
		Number:        seat.Number,
		UserID:        seat.UserID,
		ReservationID: seat.ReservationID,
		ReservedAt:    seat.ReservedAt,
	}
}

// === Handlers ===

// Reserve assigns a seat to a user.
// POST /seats/{number}/reserve
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_seat_number", "Seat number must be an integer", err.Error())
		return
	}

	var req ReserveSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON body", err.Error())
		return
	}
	if req.UserID == "" {
		h.writeError(w, http.StatusBadRequest, "validation_error", "user_id is required", "")
		return
	}

	seat, err := h.boxOffice.ReserveSeat(r.Context(), req.UserID, number)
	if err != nil {
		h.writeSeatingError(w, number, err)
		return
	}

	h.writeJSON(w, http.StatusOK, seatToResponse(*seat))
}

// Release frees a reserved seat.
// DELETE /seats/{number}/reservation
func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_seat_number", "Seat number must be an integer", err.Error())
		return
	}

	if err := h.boxOffice.ReleaseSeat(r.Context(), number); err != nil {
		h.writeSeatingError(w, number, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get returns the reservation for a single seat.
// GET /seats/{number}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_seat_number", "Seat number must be an integer", err.Error())
		return
	}

	seat, err := h.boxOffice.GetSeat(r.Context(), number)
	if err != nil {
		h.writeSeatingError(w, number, err)
		return
	}

	h.writeJSON(w, http.StatusOK, seatToResponse(*seat))
}

// List returns all reserved seats.
// GET /seats
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	seats, err := h.boxOffice.ListSeats(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "list_failed", "Failed to list seats", err.Error())
		return
	}

	resp := ListSeatsResponse{
		Seats:    make([]SeatResponse, 0, len(seats)),
		Total:    len(seats),
		Capacity: h.boxOffice.Capacity(),
	}
	for _, seat := range seats {
		resp.Seats = append(resp.Seats, seatToResponse(seat))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Health reports whether the box office can reach its storage.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	seats, err := h.boxOffice.ListSeats(r.Context())
	if err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}

	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Capacity: h.boxOffice.Capacity(),
		Reserved: len(seats),
	})
}

// writeSeatingError maps domain errors to their HTTP status codes.
// Unknown seat numbers get a plain text 404 whose body is exactly
// "Could not find {number}"; clients match on that body.
func (h *Handler) writeSeatingError(w http.ResponseWriter, number int, err error) {
	var (
		taken    *seating.SeatTakenError
		notFound *seating.SeatNotFoundError
		seated   *seating.UserAlreadySeatedError
	)

	switch {
	case errors.As(err, &notFound):
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "Could not find %d", number)
	case errors.As(err, &taken):
		h.writeError(w, http.StatusUnauthorized, "seat_taken", err.Error(), "")
	case errors.As(err, &seated):
		h.writeError(w, http.StatusBadRequest, "user_already_seated", err.Error(), "")
	case errors.Is(err, seating.ErrNotReserved):
		h.writeError(w, http.StatusNotFound, "not_reserved", fmt.Sprintf("seat %d holds no reservation", number), "")
	default:
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Unexpected error", err.Error())
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(log.CatAPI, "Failed to encode JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
