package queryservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/geo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	dealRepo := NewMockRepo(ctrl)
	service := New(dealRepo)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, dealRepo
}

// wideArea covers the whole test neighborhood so containment never filters.
var wideArea = domain.Polygon{Ring: []domain.Point{
	{Lng: -75, Lat: 40}, {Lng: -73, Lat: 40},
	{Lng: -73, Lat: 41}, {Lng: -75, Lat: 41},
	{Lng: -75, Lat: 40},
}}

func joinableDeal(id int, loc domain.Point) domain.Deal {
	return domain.Deal{
		ID:          id,
		Location:    loc,
		ServiceArea: wideArea,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.DealStatusPending,
	}
}

func TestDealsNear(t *testing.T) {
	service, dealRepo := NewMock(t)

	center := domain.Point{Lng: -74.0060, Lat: 40.7128}

	t.Run("Filters candidates by distance and lifecycle", func(t *testing.T) {
		near := joinableDeal(1, domain.Point{Lng: -74.0050, Lat: 40.7130})
		far := joinableDeal(2, domain.Point{Lng: -74.2000, Lat: 40.9000})
		expired := joinableDeal(3, domain.Point{Lng: -74.0055, Lat: 40.7129})
		expired.EndDate = time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

		dealRepo.EXPECT().FindCandidatesInBBox(gomock.Any(), gomock.Any()).
			Return([]domain.Deal{near, far, expired}, nil)

		deals, err := service.DealsNear(context.Background(), center, 5)
		assert.NoError(t, err)
		assert.Len(t, deals, 1)
		assert.Equal(t, 1, deals[0].ID)
	})

	t.Run("Passes the derived bounding box to the repo", func(t *testing.T) {
		dealRepo.EXPECT().FindCandidatesInBBox(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, box geo.BBox) ([]domain.Deal, error) {
				assert.Less(t, box.MinLng, center.Lng)
				assert.Greater(t, box.MaxLng, center.Lng)
				assert.Less(t, box.MinLat, center.Lat)
				assert.Greater(t, box.MaxLat, center.Lat)
				return nil, nil
			})

		deals, err := service.DealsNear(context.Background(), center, 2)
		assert.NoError(t, err)
		assert.Empty(t, deals)
	})

	t.Run("Rejects invalid query before hitting the repo", func(t *testing.T) {
		_, err := service.DealsNear(context.Background(), domain.Point{Lng: -74, Lat: 91}, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)

		_, err = service.DealsNear(context.Background(), center, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	})

	t.Run("Repo error surfaces", func(t *testing.T) {
		dealRepo.EXPECT().FindCandidatesInBBox(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := service.DealsNear(context.Background(), center, 5)
		assert.Error(t, err)
	})
}
