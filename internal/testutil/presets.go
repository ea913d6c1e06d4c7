package testutil

import "time"

// WithScatteredHouse adds a handful of reservations spread across the room,
// out of numeric order so list tests can assert sorting.
func (b *Builder) WithScatteredHouse() *Builder {
	curtain := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	return b.
		WithSeat(17, User("margo"), ReservedAt(curtain.Add(-2*time.Hour))).
		WithSeat(3, User("desmond"), ReservedAt(curtain.Add(-90*time.Minute))).
		WithSeat(24, User("iris"), ReservedAt(curtain.Add(-45*time.Minute))).
		WithSeat(8, User("tobias"), ReservedAt(curtain.Add(-10*time.Minute)))
}

// WithFullRow reserves every seat in the numbered range, inclusive.
func (b *Builder) WithFullRow(first, last int) *Builder {
	for n := first; n <= last; n++ {
		b.WithSeat(n)
	}
	return b
}
