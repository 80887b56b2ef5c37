package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/notify"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockDealRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockRepo(ctrl)
	dealRepo := NewMockDealRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(bookingRepo, dealRepo, notifier)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, bookingRepo, dealRepo, notifier
}

func TestCommit(t *testing.T) {
	service, bookingRepo, _, notifier := NewMock(t)

	tests := []struct {
		name           string
		dealID         int
		userID         int
		prepareMock    func()
		expectedResult *BookingResult
		expectedError  error
	}{
		{
			name:   "Booking below threshold",
			dealID: 1,
			userID: 10,
			prepareMock: func() {
				bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(&domain.CommitResult{
					Booking:  &domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusPending},
					NewCount: 2,
				}, nil)
			},
			expectedResult: &BookingResult{
				Booking:  &domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusPending},
				NewCount: 2,
			},
		},
		{
			name:   "Threshold crossing dispatches activation",
			dealID: 1,
			userID: 11,
			prepareMock: func() {
				bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 11, testNow).Return(&domain.CommitResult{
					Booking:          &domain.Booking{ID: 101, DealID: 1, UserID: 11, Status: domain.BookingStatusPending},
					NewCount:         5,
					ThresholdCrossed: true,
				}, nil)
				notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notify.DealActivated) {
					assert.Equal(t, 1, event.DealID)
					assert.Equal(t, testNow, event.ActivatedAt)
					assert.NotEmpty(t, event.EventID)
				})
			},
			expectedResult: &BookingResult{
				Booking:          &domain.Booking{ID: 101, DealID: 1, UserID: 11, Status: domain.BookingStatusPending},
				NewCount:         5,
				ThresholdCrossed: true,
			},
		},
		{
			name:   "Duplicate commit returns existing booking",
			dealID: 1,
			userID: 10,
			prepareMock: func() {
				bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(nil, domain.ErrAlreadyBooked)
				bookingRepo.EXPECT().FindByDealAndUser(gomock.Any(), 1, 10).
					Return(&domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusConfirmed}, nil)
			},
			expectedResult: &BookingResult{
				Booking:   &domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusConfirmed},
				Duplicate: true,
			},
		},
		{
			name:   "Duplicate flagged but row vanished",
			dealID: 1,
			userID: 10,
			prepareMock: func() {
				bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(nil, domain.ErrAlreadyBooked)
				bookingRepo.EXPECT().FindByDealAndUser(gomock.Any(), 1, 10).Return(nil, nil)
			},
			expectedError: domain.ErrAlreadyBooked,
		},
		{
			name:   "Closed deal surfaces unchanged",
			dealID: 2,
			userID: 10,
			prepareMock: func() {
				bookingRepo.EXPECT().CreateTxn(gomock.Any(), 2, 10, testNow).Return(nil, domain.ErrDealClosed)
			},
			expectedError: domain.ErrDealClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Commit(context.Background(), tt.dealID, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestCommit_RetriesTransientFailures(t *testing.T) {
	service, bookingRepo, _, _ := NewMock(t)

	serialization := &pgconn.PgError{Code: "40001"}
	gomock.InOrder(
		bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(nil, serialization),
		bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(nil, serialization),
		bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(&domain.CommitResult{
			Booking:  &domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusPending},
			NewCount: 1,
		}, nil),
	)

	result, err := service.Commit(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 100, result.Booking.ID)
}

func TestCommit_GivesUpAfterMaxAttempts(t *testing.T) {
	service, bookingRepo, _, _ := NewMock(t)

	deadlock := &pgconn.PgError{Code: "40P01"}
	bookingRepo.EXPECT().CreateTxn(gomock.Any(), 1, 10, testNow).Return(nil, deadlock).Times(maxAttempts)

	result, err := service.Commit(context.Background(), 1, 10)
	assert.Error(t, err)
	assert.ErrorAs(t, err, new(*pgconn.PgError))
	assert.Nil(t, result)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, isRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, isRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryable(errors.New("plain error")))
}

func TestApplyEvent(t *testing.T) {
	service, bookingRepo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		bookingID      int
		event          string
		paymentID      string
		prepareMock    func()
		expectedStatus string
		expectedError  error
	}{
		{
			name:      "Payment confirmation on a pending booking",
			bookingID: 100,
			event:     domain.BookingEventPaymentConfirmed,
			paymentID: "pay-77",
			prepareMock: func() {
				bookingRepo.EXPECT().ApplyEventTxn(gomock.Any(), 100, domain.BookingEventPaymentConfirmed, "pay-77").
					Return(&domain.Booking{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusConfirmed, PaymentID: "pay-77"}, nil)
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name:      "User cancel on a confirmed booking refunds it",
			bookingID: 100,
			event:     domain.BookingEventUserCancel,
			prepareMock: func() {
				bookingRepo.EXPECT().ApplyEventTxn(gomock.Any(), 100, domain.BookingEventUserCancel, "").
					Return(&domain.Booking{ID: 100, Status: domain.BookingStatusRefunded}, nil)
			},
			expectedStatus: domain.BookingStatusRefunded,
		},
		{
			name:      "Cancel on a refunded booking returns it unchanged",
			bookingID: 100,
			event:     domain.BookingEventUserCancel,
			prepareMock: func() {
				bookingRepo.EXPECT().ApplyEventTxn(gomock.Any(), 100, domain.BookingEventUserCancel, "").
					Return(&domain.Booking{ID: 100, Status: domain.BookingStatusRefunded}, nil)
			},
			expectedStatus: domain.BookingStatusRefunded,
		},
		{
			name:      "Unknown event",
			bookingID: 100,
			event:     "somethingElse",
			prepareMock: func() {
				bookingRepo.EXPECT().ApplyEventTxn(gomock.Any(), 100, "somethingElse", "").
					Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, "somethingElse"))
			},
			expectedError: domain.ErrUnknownEvent,
		},
		{
			name:      "Missing booking",
			bookingID: 99,
			event:     domain.BookingEventPaymentConfirmed,
			prepareMock: func() {
				bookingRepo.EXPECT().ApplyEventTxn(gomock.Any(), 99, domain.BookingEventPaymentConfirmed, "").
					Return(nil, domain.ErrBookingNotFound)
			},
			expectedError: domain.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			booking, err := service.ApplyEvent(context.Background(), tt.bookingID, tt.event, tt.paymentID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, booking.Status)
			}
		})
	}
}

func TestGetBookingsByDeal(t *testing.T) {
	service, bookingRepo, dealRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		dealID        int
		prepareMock   func()
		expected      []domain.Booking
		expectedError error
	}{
		{
			name:   "Deal with bookings",
			dealID: 1,
			prepareMock: func() {
				dealRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Deal{ID: 1}, nil)
				bookingRepo.EXPECT().FindByDeal(gomock.Any(), 1).Return([]domain.Booking{
					{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusPending},
				}, nil)
			},
			expected: []domain.Booking{{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusPending}},
		},
		{
			name:   "Missing deal",
			dealID: 99,
			prepareMock: func() {
				dealRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: domain.ErrDealNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			bookings, err := service.GetBookingsByDeal(context.Background(), tt.dealID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, bookings)
			}
		})
	}
}

func TestGetBookingsByUser(t *testing.T) {
	service, bookingRepo, _, _ := NewMock(t)

	bookingRepo.EXPECT().FindByUser(gomock.Any(), 10).Return([]domain.Booking{
		{ID: 100, DealID: 1, UserID: 10, Status: domain.BookingStatusConfirmed},
	}, nil)

	bookings, err := service.GetBookingsByUser(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
}
