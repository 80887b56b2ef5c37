package domain

import (
	"fmt"
	"time"
)

// Deal statuses.
const (
	DealStatusPending   string = "pending"
	DealStatusActive    string = "active"
	DealStatusExpired   string = "expired"
	DealStatusCancelled string = "cancelled"
)

// Booking statuses.
const (
	BookingStatusPending   string = "pending"
	BookingStatusConfirmed string = "confirmed"
	BookingStatusRefunded  string = "refunded"
	BookingStatusFailed    string = "failed"
)

// Booking events, see Booking.Apply.
const (
	BookingEventPaymentConfirmed string = "paymentConfirmed"
	BookingEventPaymentFailed    string = "paymentFailed"
	BookingEventUserCancel       string = "userCancel"
	BookingEventAdminRefund      string = "adminRefund"
)

type User struct {
	ID           int    `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	BusinessName string `db:"business_name"`
	IsBusiness   bool   `db:"is_business"`
}

type Deal struct {
	ID               int       `db:"id"`
	BusinessID       int       `db:"business_id"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	ServiceType      string    `db:"service_type"`
	OriginalPrice    int       `db:"original_price"`
	DiscountPercent  int       `db:"discount_percent"`
	MinCustomers     int       `db:"min_customers"`
	CurrentCustomers int       `db:"current_customers"`
	Location         Point     `db:"location"`
	ServiceArea      Polygon   `db:"service_area"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	Status           string    `db:"status"`
}

// DiscountedPrice derives the price in minor currency units. It is never stored.
func (d *Deal) DiscountedPrice() int {
	return d.OriginalPrice * (100 - d.DiscountPercent) / 100
}

// Joinable reports whether the deal still accepts bookings at the given instant.
func (d *Deal) Joinable(now time.Time) bool {
	if d.Status != DealStatusPending && d.Status != DealStatusActive {
		return false
	}
	return !now.Before(d.StartDate) && !now.After(d.EndDate)
}

type Booking struct {
	ID        int    `db:"id"`
	DealID    int    `db:"deal_id"`
	UserID    int    `db:"user_id"`
	Status    string `db:"status"`
	PaymentID string `db:"payment_id"`
}

// Contributing reports whether the booking counts toward its deal's
// current_customers.
func (b *Booking) Contributing() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Apply advances the booking through its state machine and reports whether
// the event changed the status. Events the current status does not accept
// leave the booking untouched; the terminal statuses (refunded, failed)
// accept nothing.
func (b *Booking) Apply(event string) (bool, error) {
	switch event {
	case BookingEventPaymentConfirmed:
		if b.Status == BookingStatusPending {
			b.Status = BookingStatusConfirmed
			return true, nil
		}
	case BookingEventPaymentFailed:
		if b.Status == BookingStatusPending {
			b.Status = BookingStatusFailed
			return true, nil
		}
	case BookingEventUserCancel, BookingEventAdminRefund:
		if b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed {
			b.Status = BookingStatusRefunded
			return true, nil
		}
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return false, nil
}

// CommitResult is the outcome of the booking commit transaction.
// ThresholdCrossed is true for exactly one booking per deal: the one whose
// increment made the count reach the minimum.
type CommitResult struct {
	Booking          *Booking
	NewCount         int
	ThresholdCrossed bool
}
