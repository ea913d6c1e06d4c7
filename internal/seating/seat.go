// Package seating holds the box-office domain: seats, reservations, and
// the errors the HTTP layer translates to status codes.
package seating

import (
	"fmt"
	"time"
)

// Seat is a reserved seat. Free seats have no record; a seat exists in
// storage only while someone holds it.
type Seat struct {
	Number        int       `json:"number"`
	UserID        string    `json:"user_id"`
	ReservationID string    `json:"reservation_id"`
	ReservedAt    time.Time `json:"reserved_at"`
}

// SeatTakenError indicates the seat is already held by someone else.
type SeatTakenError struct {
	Number int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d is already taken", e.Number)
}

// SeatNotFoundError indicates the seat number does not exist in the
// venue (out of bounds) or, for release, holds no reservation.
type SeatNotFoundError struct {
	Number int
}

func (e *SeatNotFoundError) Error() string {
	return fmt.Sprintf("could not find seat %d", e.Number)
}

// UserAlreadySeatedError indicates the user already holds a seat.
type UserAlreadySeatedError struct {
	UserID string
	Number int
}

func (e *UserAlreadySeatedError) Error() string {
	return fmt.Sprintf("user %s is already seated at %d", e.UserID, e.Number)
}
