package testutil

import (
	"database/sql"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// seatData holds all data for a seat row to be inserted.
type seatData struct {
	number        int
	userID        string
	reservationID string
	reservedAt    time.Time
}

// SeatOption configures a seat during builder setup.
type SeatOption func(*seatData)

// User sets the patron holding the seat.
func User(userID string) SeatOption {
	return func(s *seatData) { s.userID = userID }
}

// ReservationID sets the reservation identifier.
func ReservationID(id string) SeatOption {
	return func(s *seatData) { s.reservationID = id }
}

// ReservedAt sets the reservation timestamp.
func ReservedAt(at time.Time) SeatOption {
	return func(s *seatData) { s.reservedAt = at }
}

// defaultSeat returns a seatData with sensible defaults. The user and
// reservation ID derive from the seat number so rows stay unique without
// every test naming them.
func defaultSeat(number int) seatData {
	return seatData{
		number:        number,
		userID:        "patron-" + strconv.Itoa(number),
		reservationID: "res-" + strconv.Itoa(number),
		reservedAt:    time.Now(),
	}
}

// Builder accumulates seat rows and inserts them in one pass.
type Builder struct {
	t     *testing.T
	db    *sql.DB
	seats []seatData
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithSeat adds a reserved seat with optional configuration.
func (b *Builder) WithSeat(number int, opts ...SeatOption) *Builder {
	seat := defaultSeat(number)
	for _, opt := range opts {
		opt(&seat)
	}
	b.seats = append(b.seats, seat)
	return b
}

// Build inserts all accumulated seats into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, seat := range b.seats {
		_, err := b.db.Exec(
			`INSERT INTO seats (number, user_id, reservation_id, reserved_at) VALUES (?, ?, ?, ?)`,
			seat.number, seat.userID, seat.reservationID, seat.reservedAt.Unix(),
		)
		require.NoError(b.t, err)
	}
}
