package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/dealmap/docs"
	"github.com/GlebRadaev/dealmap/internal/handlers/auth"
	"github.com/GlebRadaev/dealmap/internal/handlers/bookings"
	"github.com/GlebRadaev/dealmap/internal/handlers/deals"
	"github.com/GlebRadaev/dealmap/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		DealService:    deals.NewMockService(ctrl),
		QueryService:   deals.NewMockQueryService(ctrl),
		BookingService: bookings.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDealHandler := NewMockDealHandler(ctrl)
	mockBookingHandler := NewMockBookingHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDealHandler.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).AnyTimes()
	mockDealHandler.EXPECT().GetDeal(gomock.Any(), gomock.Any()).AnyTimes()
	mockDealHandler.EXPECT().DealsNear(gomock.Any(), gomock.Any()).AnyTimes()
	mockDealHandler.EXPECT().GetBusinessDeals(gomock.Any(), gomock.Any()).AnyTimes()
	mockDealHandler.EXPECT().CancelDeal(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().ApplyEvent(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetDealBookings(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetUserBookings(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		DealHandler:    mockDealHandler,
		BookingHandler: mockBookingHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/ping", http.StatusOK},
		{"POST", "/api/register", http.StatusOK},
		{"POST", "/api/login", http.StatusOK},
		{"POST", "/api/deals", http.StatusOK},
		{"GET", "/api/deals", http.StatusOK},
		{"GET", "/api/deals/1", http.StatusOK},
		{"GET", "/api/deals/1/bookings", http.StatusOK},
		{"POST", "/api/deals/1/cancel", http.StatusUnauthorized},
		{"POST", "/api/bookings", http.StatusOK},
		{"POST", "/api/bookings/1/events", http.StatusUnauthorized},
		{"GET", "/api/business/1/deals", http.StatusOK},
		{"GET", "/api/users/1/bookings", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
