package sqlite

import (
	"time"

	"github.com/zjrosen/encore/internal/seating"
)

// SeatModel represents the database row for the seats table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type SeatModel struct {
	Number        int
	UserID        string
	ReservationID string
	ReservedAt    int64 // Unix timestamp
}

// toSeatModel converts a domain Seat to a database SeatModel.
func toSeatModel(s seating.Seat) SeatModel {
	return SeatModel{
		Number:        s.Number,
		UserID:        s.UserID,
		ReservationID: s.ReservationID,
		ReservedAt:    s.ReservedAt.Unix(),
	}
}

// toDomain converts a database SeatModel to a domain Seat.
func (m SeatModel) toDomain() seating.Seat {
	return seating.Seat{
		Number:        m.Number,
		UserID:        m.UserID,
		ReservationID: m.ReservationID,
		ReservedAt:    time.Unix(m.ReservedAt, 0).UTC(),
	}
}
