package seating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/encore/internal/cachemanager"
	"github.com/zjrosen/encore/internal/clock"
	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/pubsub"
)

const seatListCacheKey = "seats:reserved"
const seatListCacheTTL = 30 * time.Second

// BoxOffice is the application-facing seating API. The HTTP handlers and the
// kiosk UI both program against this interface so tests can substitute mocks.
type BoxOffice interface {
	// ReserveSeat assigns seatNumber to userID. It returns the reserved seat
	// on success, SeatNotFoundError when seatNumber is outside the venue,
	// SeatTakenError when another user holds the seat, and
	// UserAlreadySeatedError when userID already holds a different seat.
	ReserveSeat(ctx context.Context, userID string, seatNumber int) (*Seat, error)

	// ReleaseSeat frees a previously reserved seat. Returns SeatNotFoundError
	// for out-of-range numbers and ErrNotReserved when the seat is empty.
	ReleaseSeat(ctx context.Context, seatNumber int) error

	// GetSeat returns the reservation occupying seatNumber, or ErrNotReserved.
	GetSeat(ctx context.Context, seatNumber int) (*Seat, error)

	// ListSeats returns every reserved seat ordered by seat number.
	ListSeats(ctx context.Context) ([]Seat, error)

	// Capacity reports the number of seats in the venue.
	Capacity() int
}

// Service implements BoxOffice over a SeatRepository with a read cache and
// pubsub notifications on every mutation.
type Service struct {
	repo     SeatRepository
	capacity int
	cache    cachemanager.CacheManager[string, []Seat]
	broker   *pubsub.Broker[Seat]
	clock    clock.Clock
}

// NewService wires a Service. The broker may be nil when no listener cares
// about seating events, e.g. the serve daemon without a kiosk attached.
func NewService(
	repo SeatRepository,
	capacity int,
	cache cachemanager.CacheManager[string, []Seat],
	broker *pubsub.Broker[Seat],
	clk clock.Clock,
) *Service {
	return &Service{
		repo:     repo,
		capacity: capacity,
		cache:    cache,
		broker:   broker,
		clock:    clk,
	}
}

func (s *Service) Capacity() int {
	return s.capacity
}

func (s *Service) ReserveSeat(ctx context.Context, userID string, seatNumber int) (*Seat, error) {
	if seatNumber < 1 || seatNumber > s.capacity {
		return nil, &SeatNotFoundError{Number: seatNumber}
	}

	if existing, err := s.repo.FindByUser(ctx, userID); err == nil {
		return nil, &UserAlreadySeatedError{UserID: userID, Number: existing.Number}
	} else if !errors.Is(err, ErrNotReserved) {
		return nil, fmt.Errorf("looking up user %s: %w", userID, err)
	}

	if _, err := s.repo.Get(ctx, seatNumber); err == nil {
		return nil, &SeatTakenError{Number: seatNumber}
	} else if !errors.Is(err, ErrNotReserved) {
		return nil, fmt.Errorf("looking up seat %d: %w", seatNumber, err)
	}

	seat := Seat{
		Number:        seatNumber,
		UserID:        userID,
		ReservationID: uuid.NewString(),
		ReservedAt:    s.clock.Now(),
	}

	if err := s.repo.Reserve(ctx, seat); err != nil {
		// Another request may have grabbed the seat between our check and
		// the insert; surface that as taken rather than a raw storage error.
		var taken *SeatTakenError
		if errors.As(err, &taken) {
			return nil, taken
		}
		return nil, fmt.Errorf("reserving seat %d: %w", seatNumber, err)
	}

	s.invalidate(ctx)
	s.publish(pubsub.ReservedEvent, seat)
	log.Info(log.CatSeating, "seat reserved", "seat", seatNumber, "user", userID, "reservation", seat.ReservationID)

	return &seat, nil
}

func (s *Service) ReleaseSeat(ctx context.Context, seatNumber int) error {
	if seatNumber < 1 || seatNumber > s.capacity {
		return &SeatNotFoundError{Number: seatNumber}
	}

	seat, err := s.repo.Get(ctx, seatNumber)
	if err != nil {
		return err
	}

	if err := s.repo.Release(ctx, seatNumber); err != nil {
		return fmt.Errorf("releasing seat %d: %w", seatNumber, err)
	}

	s.invalidate(ctx)
	s.publish(pubsub.ReleasedEvent, *seat)
	log.Info(log.CatSeating, "seat released", "seat", seatNumber, "user", seat.UserID)

	return nil
}

func (s *Service) GetSeat(ctx context.Context, seatNumber int) (*Seat, error) {
	if seatNumber < 1 || seatNumber > s.capacity {
		return nil, &SeatNotFoundError{Number: seatNumber}
	}

	return s.repo.Get(ctx, seatNumber)
}

func (s *Service) ListSeats(ctx context.Context) ([]Seat, error) {
	if s.cache != nil {
		if seats, ok := s.cache.Get(ctx, seatListCacheKey); ok {
			return seats, nil
		}
	}

	seats, err := s.repo.ListReserved(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing seats: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, seatListCacheKey, seats, seatListCacheTTL)
	}

	return seats, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, seatListCacheKey); err != nil {
		log.ErrorErr(log.CatCache, "invalidating seat list cache", err)
	}
}

func (s *Service) publish(eventType pubsub.EventType, seat Seat) {
	if s.broker == nil {
		return
	}
	s.broker.Publish(eventType, seat)
}
