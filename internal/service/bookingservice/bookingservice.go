package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/notify"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

type Repo interface {
	CreateTxn(ctx context.Context, dealID, userID int, now time.Time) (*domain.CommitResult, error)
	ApplyEventTxn(ctx context.Context, bookingID int, event, paymentID string) (*domain.Booking, error)
	FindByDealAndUser(ctx context.Context, dealID, userID int) (*domain.Booking, error)
	FindByDeal(ctx context.Context, dealID int) ([]domain.Booking, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Booking, error)
}

type DealRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Deal, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, event notify.DealActivated)
}

// Service is the only component that creates bookings or moves a deal's
// counters. It holds no state of its own; all mutations happen inside the
// repository's transactions.
type Service struct {
	bookingRepo Repo
	dealRepo    DealRepo
	notifier    Notifier
	now         func() time.Time
}

func New(bookingRepo Repo, dealRepo DealRepo, notifier Notifier) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		dealRepo:    dealRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// BookingResult is what a commit returns to the caller.
type BookingResult struct {
	Booking          *domain.Booking
	Duplicate        bool
	NewCount         int
	ThresholdCrossed bool
}

// Commit books the deal for the user. A repeat commit for the same pair is not
// an error: it returns the existing booking flagged as a duplicate. Transient
// storage failures are retried a bounded number of times.
func (s *Service) Commit(ctx context.Context, dealID, userID int) (*BookingResult, error) {
	result, err := s.commitWithRetry(ctx, dealID, userID)
	if errors.Is(err, domain.ErrAlreadyBooked) {
		existing, ferr := s.bookingRepo.FindByDealAndUser(ctx, dealID, userID)
		if ferr != nil {
			return nil, ferr
		}
		if existing == nil {
			return nil, err
		}
		zap.L().Info("duplicate commit", zap.Int("deal_id", dealID), zap.Int("user_id", userID))
		return &BookingResult{Booking: existing, Duplicate: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if result.ThresholdCrossed {
		s.notifier.Dispatch(ctx, notify.NewDealActivated(dealID, s.now()))
	}

	return &BookingResult{
		Booking:          result.Booking,
		NewCount:         result.NewCount,
		ThresholdCrossed: result.ThresholdCrossed,
	}, nil
}

func (s *Service) commitWithRetry(ctx context.Context, dealID, userID int) (*domain.CommitResult, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := s.bookingRepo.CreateTxn(ctx, dealID, userID, s.now())
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
		zap.L().Warn("retrying booking commit",
			zap.Int("deal_id", dealID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(1<<(attempt-1))):
		}
	}
	return nil, fmt.Errorf("booking commit failed after %d attempts: %w", maxAttempts, lastErr)
}

// isRetryable matches the postgres serialization_failure and deadlock_detected
// codes. Everything else surfaces unchanged.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}

// ApplyEvent advances the booking's state machine. The repo evaluates the
// transition with the booking row locked, so a stale read can never resurrect
// a refunded or failed booking. Events that the current state ignores return
// the booking unchanged.
func (s *Service) ApplyEvent(ctx context.Context, bookingID int, event, paymentID string) (*domain.Booking, error) {
	updated, err := s.bookingRepo.ApplyEventTxn(ctx, bookingID, event, paymentID)
	if err != nil {
		zap.L().Error("can't apply booking event", zap.Error(err))
		return nil, err
	}
	zap.L().Info("booking event applied",
		zap.Int("booking_id", bookingID),
		zap.String("event", event),
		zap.String("status", updated.Status))
	return updated, nil
}

func (s *Service) GetBookingsByDeal(ctx context.Context, dealID int) ([]domain.Booking, error) {
	deal, err := s.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrDealNotFound
	}
	return s.bookingRepo.FindByDeal(ctx, dealID)
}

func (s *Service) GetBookingsByUser(ctx context.Context, userID int) ([]domain.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}
