package seating

import (
	"context"
	"errors"
)

// ErrNotReserved is returned by repository lookups when no reservation
// exists for the requested seat or user.
var ErrNotReserved = errors.New("seat not reserved")

// SeatRepository persists seat reservations.
type SeatRepository interface {
	// Reserve stores a new reservation.
	Reserve(ctx context.Context, seat Seat) error

	// Release removes the reservation for a seat.
	// Returns ErrNotReserved when the seat holds none.
	Release(ctx context.Context, number int) error

	// Get returns the reservation for a seat.
	// Returns ErrNotReserved when the seat is free.
	Get(ctx context.Context, number int) (*Seat, error)

	// FindByUser returns the seat a user holds.
	// Returns ErrNotReserved when the user holds none.
	FindByUser(ctx context.Context, userID string) (*Seat, error)

	// ListReserved returns all reserved seats ordered by seat number.
	ListReserved(ctx context.Context) ([]Seat, error)
}
