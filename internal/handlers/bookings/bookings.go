package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/dto"
	"github.com/GlebRadaev/dealmap/internal/service/bookingservice"
	"github.com/GlebRadaev/dealmap/pkg/utils"
)

type Service interface {
	Commit(ctx context.Context, dealID, userID int) (*bookingservice.BookingResult, error)
	ApplyEvent(ctx context.Context, bookingID int, event, paymentID string) (*domain.Booking, error)
	GetBookingsByDeal(ctx context.Context, dealID int) ([]domain.Booking, error)
	GetBookingsByUser(ctx context.Context, userID int) ([]domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
//
//	@Summary		Commit to a deal
//	@Description	Books the deal for the user; repeating the same pair returns the existing booking with duplicate=true
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request"
//	@Success		201		{object}	dto.BookingResponseDTO
//	@Success		200		{object}	dto.BookingResponseDTO	"Duplicate commit"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Deal not found"
//	@Failure		410		{object}	utils.Response	"Deal closed or expired"
//	@Failure		422		{object}	utils.Response	"Deal not yet open"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DealID <= 0 || req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "dealId and userId are required")
		return
	}

	result, err := h.bookingService.Commit(r.Context(), req.DealID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDealNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrDealClosed), errors.Is(err, domain.ErrDealExpired):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		case errors.Is(err, domain.ErrDealNotYetOpen):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	utils.RespondWithJSON(w, status, dto.NewBookingResponse(result.Booking, result.Duplicate))
}

// ApplyEvent godoc
//
//	@Summary		Apply a payment or cancellation event to a booking
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking id"
//	@Param			request	body		dto.BookingEventRequestDTO	true	"Event"
//	@Security		BearerAuth
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown event"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/events [post]
func (h *BookingHandler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.BookingEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.ApplyEvent(r.Context(), id, req.Event, req.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrUnknownEvent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponse(booking, false))
}

// GetDealBookings godoc
//
//	@Summary		List a deal's bookings
//	@Tags			Bookings
//	@Produce		json
//	@Param			id	path		int	true	"Deal id"
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		404	{object}	utils.Response	"Deal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deals/{id}/bookings [get]
func (h *BookingHandler) GetDealBookings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deal id")
		return
	}

	bookings, err := h.bookingService.GetBookingsByDeal(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponses(bookings))
}

// GetUserBookings godoc
//
//	@Summary		List a user's bookings
//	@Tags			Bookings
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/bookings [get]
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	bookings, err := h.bookingService.GetBookingsByUser(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBookingResponses(bookings))
}
