package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/dealmap/docs"
	authhandlers "github.com/GlebRadaev/dealmap/internal/handlers/auth"
	bookinghandlers "github.com/GlebRadaev/dealmap/internal/handlers/bookings"
	dealhandlers "github.com/GlebRadaev/dealmap/internal/handlers/deals"
	"github.com/GlebRadaev/dealmap/internal/service"
	"github.com/GlebRadaev/dealmap/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DealHandler interface {
	CreateDeal(w http.ResponseWriter, r *http.Request)
	GetDeal(w http.ResponseWriter, r *http.Request)
	DealsNear(w http.ResponseWriter, r *http.Request)
	GetBusinessDeals(w http.ResponseWriter, r *http.Request)
	CancelDeal(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	ApplyEvent(w http.ResponseWriter, r *http.Request)
	GetDealBookings(w http.ResponseWriter, r *http.Request)
	GetUserBookings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	DealHandler    DealHandler
	BookingHandler BookingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		DealHandler:    dealhandlers.New(s.DealService, s.QueryService),
		BookingHandler: bookinghandlers.New(s.BookingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", h.DealHandler.CreateDeal)
			r.Get("/", h.DealHandler.DealsNear)
			r.Get("/{id}", h.DealHandler.GetDeal)
			r.Get("/{id}/bookings", h.BookingHandler.GetDealBookings)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/{id}/cancel", h.DealHandler.CancelDeal)
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.BookingHandler.CreateBooking)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/{id}/events", h.BookingHandler.ApplyEvent)
			})
		})

		r.Get("/business/{id}/deals", h.DealHandler.GetBusinessDeals)
		r.Get("/users/{id}/bookings", h.BookingHandler.GetUserBookings)
	})

	return r
}
