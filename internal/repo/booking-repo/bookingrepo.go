package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateTxn inserts a booking and bumps the deal's customer count in one
// transaction. The deal row is locked first, so concurrent bookings on the
// same deal serialize here and the threshold flip happens exactly once.
func (r *Repository) CreateTxn(ctx context.Context, dealID, userID int, now time.Time) (*domain.CommitResult, error) {
	var result *domain.CommitResult
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		lockQuery := `
            SELECT status, min_customers, current_customers, start_date, end_date
            FROM deals
            WHERE id = $1
            FOR UPDATE
        `
		var (
			status             string
			minCustomers       int
			currentCustomers   int
			startDate, endDate time.Time
		)
		err := r.db.QueryRow(ctx, lockQuery, dealID).
			Scan(&status, &minCustomers, &currentCustomers, &startDate, &endDate)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDealNotFound
		}
		if err != nil {
			zap.L().Error("can't lock deal", zap.Error(err))
			return err
		}

		if status != domain.DealStatusPending && status != domain.DealStatusActive {
			return domain.ErrDealClosed
		}
		if now.After(endDate) {
			return domain.ErrDealExpired
		}
		if now.Before(startDate) {
			return domain.ErrDealNotYetOpen
		}

		booking := &domain.Booking{
			DealID: dealID,
			UserID: userID,
			Status: domain.BookingStatusPending,
		}
		insertQuery := `
            INSERT INTO bookings (deal_id, user_id, status)
            VALUES ($1, $2, 'pending')
            RETURNING id
        `
		err = r.db.QueryRow(ctx, insertQuery, dealID, userID).Scan(&booking.ID)
		if isUniqueViolation(err) {
			return domain.ErrAlreadyBooked
		}
		if err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}

		newCount := currentCustomers + 1
		crossed := status == domain.DealStatusPending && newCount >= minCustomers
		newStatus := status
		if crossed {
			newStatus = domain.DealStatusActive
		}

		updateQuery := `
            UPDATE deals
            SET current_customers = $2, status = $3
            WHERE id = $1
        `
		if _, err = r.db.Exec(ctx, updateQuery, dealID, newCount, newStatus); err != nil {
			zap.L().Error("can't update deal counters", zap.Error(err))
			return err
		}

		result = &domain.CommitResult{
			Booking:          booking,
			NewCount:         newCount,
			ThresholdCrossed: crossed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyEventTxn advances the booking's state machine with the row locked, so
// a concurrent event cannot move a booking out of a terminal state. Ignored
// events leave the row untouched and return the booking as stored. The paired
// customer count delta lands on the owning deal in the same transaction; an
// activated deal keeps its status even when the count drops back below the
// threshold.
func (r *Repository) ApplyEventTxn(ctx context.Context, bookingID int, event, paymentID string) (*domain.Booking, error) {
	var updated *domain.Booking
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var booking domain.Booking
		err := r.db.QueryRow(ctx, `
            SELECT id, deal_id, user_id, status, payment_id
            FROM bookings
            WHERE id = $1
            FOR UPDATE
        `, bookingID).Scan(&booking.ID, &booking.DealID, &booking.UserID, &booking.Status, &booking.PaymentID)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		if err != nil {
			zap.L().Error("can't lock booking", zap.Error(err))
			return err
		}

		wasContributing := booking.Contributing()
		applied, err := booking.Apply(event)
		if err != nil {
			return err
		}
		if !applied {
			updated = &booking
			return nil
		}
		if paymentID != "" {
			booking.PaymentID = paymentID
		}

		if _, err = r.db.Exec(ctx, `
            UPDATE bookings
            SET status = $2, payment_id = $3
            WHERE id = $1
        `, booking.ID, booking.Status, booking.PaymentID); err != nil {
			zap.L().Error("can't update booking", zap.Error(err))
			return err
		}

		if delta := contributionDelta(wasContributing, booking.Contributing()); delta != 0 {
			if _, err = r.db.Exec(ctx, `
                UPDATE deals
                SET current_customers = current_customers + $2
                WHERE id = $1
            `, booking.DealID, delta); err != nil {
				zap.L().Error("can't update deal counters", zap.Error(err))
				return err
			}
		}

		updated = &booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) FindByDealAndUser(ctx context.Context, dealID, userID int) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.QueryRow(ctx, `
        SELECT id, deal_id, user_id, status, payment_id
        FROM bookings
        WHERE deal_id = $1 AND user_id = $2
    `, dealID, userID).Scan(&booking.ID, &booking.DealID, &booking.UserID, &booking.Status, &booking.PaymentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &booking, nil
}

func (r *Repository) FindByDeal(ctx context.Context, dealID int) ([]domain.Booking, error) {
	return r.findBy(ctx, "deal_id", dealID)
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Booking, error) {
	return r.findBy(ctx, "user_id", userID)
}

func (r *Repository) findBy(ctx context.Context, column string, value int) ([]domain.Booking, error) {
	query := `
        SELECT id, deal_id, user_id, status, payment_id
        FROM bookings
        WHERE ` + column + ` = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(&booking.ID, &booking.DealID, &booking.UserID, &booking.Status, &booking.PaymentID); err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func contributionDelta(was, is bool) int {
	switch {
	case was && !is:
		return -1
	case !was && is:
		return 1
	default:
		return 0
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
