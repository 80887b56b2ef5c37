package queryservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/geo"
	"go.uber.org/zap"
)

type Repo interface {
	FindCandidatesInBBox(ctx context.Context, box geo.BBox) ([]domain.Deal, error)
}

// Service is the discovery read path: a cheap bounding-box scan in the store,
// then the exact distance and containment tests in geo. Results are a
// point-in-time snapshot; no locks are held.
type Service struct {
	dealRepo Repo
	now      func() time.Time
}

func New(dealRepo Repo) *Service {
	return &Service{
		dealRepo: dealRepo,
		now:      time.Now,
	}
}

func (s *Service) DealsNear(ctx context.Context, p domain.Point, radiusKm float64) ([]domain.Deal, error) {
	if err := geo.ValidateQuery(p, radiusKm); err != nil {
		return nil, err
	}

	box := geo.BoundingBox(p, radiusKm)
	candidates, err := s.dealRepo.FindCandidatesInBBox(ctx, box)
	if err != nil {
		zap.L().Error("can't get candidate deals", zap.Error(err))
		return nil, err
	}

	return geo.DealsWithin(p, radiusKm, s.now(), candidates)
}
