package dto

import "github.com/GlebRadaev/dealmap/internal/domain"

type CreateBookingRequestDTO struct {
	DealID int `json:"dealId" example:"1"`
	UserID int `json:"userId" example:"11"`
}

type BookingResponseDTO struct {
	ID        int    `json:"id" example:"1"`
	DealID    int    `json:"dealId" example:"1"`
	UserID    int    `json:"userId" example:"11"`
	Status    string `json:"status" example:"pending"`
	PaymentID string `json:"paymentId,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

type BookingEventRequestDTO struct {
	Event     string `json:"event" example:"paymentConfirmed"`
	PaymentID string `json:"paymentId,omitempty" example:"pi_3MtwBwLkdIwHu7ix28a3tqPa"`
}

func NewBookingResponse(booking *domain.Booking, duplicate bool) BookingResponseDTO {
	return BookingResponseDTO{
		ID:        booking.ID,
		DealID:    booking.DealID,
		UserID:    booking.UserID,
		Status:    booking.Status,
		PaymentID: booking.PaymentID,
		Duplicate: duplicate,
	}
}

func NewBookingResponses(bookings []domain.Booking) []BookingResponseDTO {
	responses := make([]BookingResponseDTO, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, NewBookingResponse(&bookings[i], false))
	}
	return responses
}
