package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/encore/internal/seating"
)

// seatColumns is the list of columns to select for seat queries.
const seatColumns = `number, user_id, reservation_id, reserved_at`

// seatRepository implements seating.SeatRepository using SQLite.
type seatRepository struct {
	db *sql.DB
}

func newSeatRepository(db *sql.DB) *seatRepository {
	return &seatRepository{db: db}
}

// Ensure seatRepository implements seating.SeatRepository.
var _ seating.SeatRepository = (*seatRepository)(nil)

// scanSeat scans a row into a SeatModel.
func scanSeat(scanner interface{ Scan(...any) error }) (SeatModel, error) {
	var model SeatModel
	err := scanner.Scan(&model.Number, &model.UserID, &model.ReservationID, &model.ReservedAt)
	return model, err
}

// Reserve inserts a new reservation row. The primary key on number and the
// unique index on user_id enforce one-user-per-seat and one-seat-per-user at
// the storage level; constraint violations are mapped to domain errors.
func (r *seatRepository) Reserve(ctx context.Context, seat seating.Seat) error {
	model := toSeatModel(seat)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seats (number, user_id, reservation_id, reserved_at) VALUES (?, ?, ?, ?)`,
		model.Number, model.UserID, model.ReservationID, model.ReservedAt,
	)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "seats.number"):
			return &seating.SeatTakenError{Number: seat.Number}
		case strings.Contains(msg, "seats.user_id"):
			return &seating.UserAlreadySeatedError{UserID: seat.UserID, Number: seat.Number}
		}
		return fmt.Errorf("failed to insert seat: %w", err)
	}
	return nil
}

func (r *seatRepository) Release(ctx context.Context, number int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM seats WHERE number = ?`, number)
	if err != nil {
		return fmt.Errorf("failed to delete seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return seating.ErrNotReserved
	}
	return nil
}

func (r *seatRepository) Get(ctx context.Context, number int) (*seating.Seat, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+seatColumns+` FROM seats WHERE number = ?`, number)

	model, err := scanSeat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, seating.ErrNotReserved
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find seat: %w", err)
	}

	seat := model.toDomain()
	return &seat, nil
}

func (r *seatRepository) FindByUser(ctx context.Context, userID string) (*seating.Seat, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+seatColumns+` FROM seats WHERE user_id = ?`, userID)

	model, err := scanSeat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, seating.ErrNotReserved
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find seat by user: %w", err)
	}

	seat := model.toDomain()
	return &seat, nil
}

func (r *seatRepository) ListReserved(ctx context.Context) ([]seating.Seat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+seatColumns+` FROM seats ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	defer rows.Close()

	seats := []seating.Seat{}
	for rows.Next() {
		model, err := scanSeat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate seats: %w", err)
	}

	return seats, nil
}
