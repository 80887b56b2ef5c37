package repo

import (
	"github.com/GlebRadaev/dealmap/internal/pg"
	bookingrepo "github.com/GlebRadaev/dealmap/internal/repo/booking-repo"
	dealrepo "github.com/GlebRadaev/dealmap/internal/repo/deal-repo"
	userrepo "github.com/GlebRadaev/dealmap/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	DealRepo    *dealrepo.Repository
	BookingRepo *bookingrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		DealRepo:    dealrepo.New(conn, txManager),
		BookingRepo: bookingrepo.New(conn, txManager),
	}
}
