package service

import (
	"github.com/GlebRadaev/dealmap/internal/handlers/auth"
	"github.com/GlebRadaev/dealmap/internal/handlers/bookings"
	"github.com/GlebRadaev/dealmap/internal/handlers/deals"

	pkgauth "github.com/GlebRadaev/dealmap/pkg/auth"

	"github.com/GlebRadaev/dealmap/internal/repo"
	"github.com/GlebRadaev/dealmap/internal/service/authservice"
	"github.com/GlebRadaev/dealmap/internal/service/bookingservice"
	"github.com/GlebRadaev/dealmap/internal/service/dealservice"
	"github.com/GlebRadaev/dealmap/internal/service/queryservice"
)

type Services struct {
	AuthService    auth.Service
	DealService    deals.Service
	QueryService   deals.QueryService
	BookingService bookings.Service
}

func New(repo *repo.Repositories, notifier bookingservice.Notifier) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	dealService := dealservice.New(repo.DealRepo, repo.UserRepo)
	queryService := queryservice.New(repo.DealRepo)
	bookingService := bookingservice.New(repo.BookingRepo, repo.DealRepo, notifier)

	return &Services{
		AuthService:    authService,
		DealService:    dealService,
		QueryService:   queryService,
		BookingService: bookingService,
	}
}
