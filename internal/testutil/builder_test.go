package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTestDB_HasSeatsTable(t *testing.T) {
	db := NewTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='seats'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "seats", name)
}

func TestBuilder_InsertsSeats(t *testing.T) {
	db := NewTestDB(t)
	at := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	NewBuilder(t, db).
		WithSeat(5, User("margo"), ReservationID("res-abc"), ReservedAt(at)).
		WithSeat(12).
		Build()

	var userID, reservationID string
	var reservedAt int64
	err := db.QueryRow(`SELECT user_id, reservation_id, reserved_at FROM seats WHERE number = 5`).
		Scan(&userID, &reservationID, &reservedAt)
	require.NoError(t, err)
	require.Equal(t, "margo", userID)
	require.Equal(t, "res-abc", reservationID)
	require.Equal(t, at.Unix(), reservedAt)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM seats`).Scan(&count))
	require.Equal(t, 2, count)
}

func TestBuilder_DefaultsAreUniquePerSeat(t *testing.T) {
	db := NewTestDB(t)

	// Defaults must not collide on the unique user/reservation indexes.
	NewBuilder(t, db).WithFullRow(1, 8).Build()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(DISTINCT user_id) FROM seats`).Scan(&count))
	require.Equal(t, 8, count)
}

func TestWithScatteredHouse(t *testing.T) {
	db := NewTestDB(t)

	NewBuilder(t, db).WithScatteredHouse().Build()

	rows, err := db.Query(`SELECT number FROM seats ORDER BY number`)
	require.NoError(t, err)
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		require.NoError(t, rows.Scan(&n))
		numbers = append(numbers, n)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []int{3, 8, 17, 24}, numbers)
}
