package dealservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/geo"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	FindByID(ctx context.Context, id int) (*domain.Deal, error)
	FindByBusiness(ctx context.Context, businessID int) ([]domain.Deal, error)
	Cancel(ctx context.Context, id int) (*domain.Deal, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	dealRepo Repo
	userRepo UserRepo
}

func New(dealRepo Repo, userRepo UserRepo) *Service {
	return &Service{
		dealRepo: dealRepo,
		userRepo: userRepo,
	}
}

var ErrNotDealOwner = errors.New("deal belongs to another business")

func (s *Service) CreateDeal(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	if err := s.validate(ctx, deal); err != nil {
		zap.L().Info("deal rejected", zap.Error(err))
		return nil, err
	}

	created, err := s.dealRepo.Create(ctx, deal)
	if err != nil {
		zap.L().Error("can't create deal", zap.Error(err))
		return nil, err
	}
	zap.L().Info("deal created", zap.Int("deal_id", created.ID), zap.Int("business_id", created.BusinessID))
	return created, nil
}

func (s *Service) validate(ctx context.Context, deal *domain.Deal) error {
	if deal.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidDeal)
	}
	if deal.OriginalPrice <= 0 {
		return fmt.Errorf("%w: original price must be positive", domain.ErrInvalidDeal)
	}
	if deal.DiscountPercent < 0 || deal.DiscountPercent > 100 {
		return fmt.Errorf("%w: discount percent must be within 0-100", domain.ErrInvalidDeal)
	}
	if deal.MinCustomers < 1 {
		return fmt.Errorf("%w: min customers must be at least 1", domain.ErrInvalidDeal)
	}
	if !deal.StartDate.Before(deal.EndDate) {
		return fmt.Errorf("%w: start date must precede end date", domain.ErrInvalidDeal)
	}
	if !deal.Location.Valid() {
		return fmt.Errorf("%w: bad location", domain.ErrInvalidDeal)
	}
	if !deal.ServiceArea.Valid() {
		return fmt.Errorf("%w: bad service area polygon", domain.ErrInvalidDeal)
	}
	if !geo.PolygonContains(deal.ServiceArea, deal.Location) {
		return fmt.Errorf("%w: service area does not contain location", domain.ErrInvalidDeal)
	}

	owner, err := s.userRepo.FindByID(ctx, deal.BusinessID)
	if err != nil {
		return err
	}
	if owner == nil || !owner.IsBusiness {
		return fmt.Errorf("%w: owner is not a business account", domain.ErrInvalidDeal)
	}
	return nil
}

func (s *Service) GetDeal(ctx context.Context, id int) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get deal", zap.Error(err))
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrDealNotFound
	}
	return deal, nil
}

func (s *Service) GetDealsByBusiness(ctx context.Context, businessID int) ([]domain.Deal, error) {
	deals, err := s.dealRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		zap.L().Error("can't get business deals", zap.Error(err))
		return nil, err
	}
	return deals, nil
}

// CancelDeal sets the deal's status to cancelled. Only the owning business may
// cancel; the terminal status is never left again.
func (s *Service) CancelDeal(ctx context.Context, id, callerID int) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrDealNotFound
	}
	if deal.BusinessID != callerID {
		return nil, ErrNotDealOwner
	}

	cancelled, err := s.dealRepo.Cancel(ctx, id)
	if err != nil {
		zap.L().Error("can't cancel deal", zap.Error(err))
		return nil, err
	}
	zap.L().Info("deal cancelled", zap.Int("deal_id", id))
	return cancelled, nil
}
