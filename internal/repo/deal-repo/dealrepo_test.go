package dealrepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/geo"
	"github.com/GlebRadaev/dealmap/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var dealRowColumns = []string{
	"id", "business_id", "title", "description", "service_type", "original_price", "discount_percent",
	"min_customers", "current_customers", "location", "service_area", "start_date", "end_date", "status",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func testDeal() *domain.Deal {
	return &domain.Deal{
		ID:              1,
		BusinessID:      7,
		Title:           "Lawn mowing special",
		Description:     "Half price when five neighbors join",
		ServiceType:     "lawn_care",
		OriginalPrice:   10000,
		DiscountPercent: 25,
		MinCustomers:    5,
		Location:        domain.Point{Lng: -74.0060, Lat: 40.7128},
		ServiceArea: domain.Polygon{Ring: []domain.Point{
			{Lng: -74.02, Lat: 40.70}, {Lng: -73.99, Lat: 40.70},
			{Lng: -73.99, Lat: 40.73}, {Lng: -74.02, Lat: 40.73},
			{Lng: -74.02, Lat: 40.70},
		}},
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.DealStatusPending,
	}
}

func dealRow(deal *domain.Deal) *pgxmock.Rows {
	return pgxmock.NewRows(dealRowColumns).AddRow(
		deal.ID, deal.BusinessID, deal.Title, deal.Description, deal.ServiceType,
		deal.OriginalPrice, deal.DiscountPercent, deal.MinCustomers, deal.CurrentCustomers,
		deal.Location, deal.ServiceArea, deal.StartDate, deal.EndDate, deal.Status,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func(deal *domain.Deal)
		expectErr bool
	}{
		{
			name: "Successfully creates deal",
			mockSetup: func(deal *domain.Deal) {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO deals (business_id, title, description, service_type, original_price, discount_percent,
                           min_customers, current_customers, location, service_area, start_date, end_date, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, $11, 'pending')
        RETURNING id, current_customers, status
    `)).
					WithArgs(deal.BusinessID, deal.Title, deal.Description, deal.ServiceType,
						deal.OriginalPrice, deal.DiscountPercent, deal.MinCustomers,
						deal.Location, deal.ServiceArea, deal.StartDate, deal.EndDate).
					WillReturnRows(pgxmock.NewRows([]string{"id", "current_customers", "status"}).
						AddRow(1, 0, "pending"))
			},
		},
		{
			name: "Database error",
			mockSetup: func(deal *domain.Deal) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deals`)).
					WithArgs(deal.BusinessID, deal.Title, deal.Description, deal.ServiceType,
						deal.OriginalPrice, deal.DiscountPercent, deal.MinCustomers,
						deal.Location, deal.ServiceArea, deal.StartDate, deal.EndDate).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deal := testDeal()
			deal.ID = 0
			deal.Status = ""
			tt.mockSetup(deal)

			result, err := repo.Create(context.Background(), deal)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, 0, result.CurrentCustomers)
				assert.Equal(t, domain.DealStatusPending, result.Status)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := fmt.Sprintf("SELECT %s FROM deals WHERE id = $1", dealColumns)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Deal
	}{
		{
			name: "Existing id returns deal",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(dealRow(testDeal()))
			},
			result: testDeal(),
		},
		{
			name: "Missing id returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByBusiness(t *testing.T) {
	repo, mock, _ := NewMock(t)

	deal := testDeal()
	mock.ExpectQuery(regexp.QuoteMeta(fmt.Sprintf(`
        SELECT %s
        FROM deals
        WHERE business_id = $1
        ORDER BY start_date DESC, id
    `, dealColumns))).
		WithArgs(7).
		WillReturnRows(dealRow(deal))

	deals, err := repo.FindByBusiness(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Deal{*deal}, deals)
}

func TestRepository_FindCandidatesInBBox(t *testing.T) {
	repo, mock, _ := NewMock(t)

	box := geo.BBox{MinLng: -74.1, MinLat: 40.6, MaxLng: -73.9, MaxLat: 40.8}
	deal := testDeal()
	mock.ExpectQuery(regexp.QuoteMeta(fmt.Sprintf(`
        SELECT %s
        FROM deals
        WHERE status IN ('pending', 'active')
          AND (location -> 'coordinates' ->> 0)::float8 BETWEEN $1 AND $2
          AND (location -> 'coordinates' ->> 1)::float8 BETWEEN $3 AND $4
        ORDER BY id
    `, dealColumns))).
		WithArgs(box.MinLng, box.MaxLng, box.MinLat, box.MaxLat).
		WillReturnRows(dealRow(deal))

	deals, err := repo.FindCandidatesInBBox(context.Background(), box)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Deal{*deal}, deals)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock, tx := NewMock(t)
	query := fmt.Sprintf(`
        UPDATE deals
        SET status = 'cancelled'
        WHERE id = $1
        RETURNING %s
    `, dealColumns)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr error
	}{
		{
			name: "Successfully cancels deal",
			id:   1,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					cancelled := testDeal()
					cancelled.Status = domain.DealStatusCancelled
					mock.ExpectQuery(regexp.QuoteMeta(query)).
						WithArgs(1).
						WillReturnRows(dealRow(cancelled))
					return fn(ctx)
				})
			},
		},
		{
			name: "Missing deal returns ErrDealNotFound",
			id:   99,
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta(query)).
						WithArgs(99).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectErr: domain.ErrDealNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Cancel(context.Background(), tt.id)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.DealStatusCancelled, result.Status)
			}
		})
	}
}
