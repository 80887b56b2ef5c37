package repo

import (
	"testing"

	"github.com/GlebRadaev/dealmap/internal/pg"
	bookingrepo "github.com/GlebRadaev/dealmap/internal/repo/booking-repo"
	dealrepo "github.com/GlebRadaev/dealmap/internal/repo/deal-repo"
	userrepo "github.com/GlebRadaev/dealmap/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.DealRepo)
	assert.NotNil(t, repo.BookingRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &dealrepo.Repository{}, repo.DealRepo)
	assert.IsType(t, &bookingrepo.Repository{}, repo.BookingRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
