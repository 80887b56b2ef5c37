package dealrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/geo"
	"github.com/GlebRadaev/dealmap/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dealColumns = `id, business_id, title, description, service_type, original_price, discount_percent,
	       min_customers, current_customers, location, service_area, start_date, end_date, status`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanDeal(row pgx.Row) (*domain.Deal, error) {
	var deal domain.Deal
	err := row.Scan(&deal.ID, &deal.BusinessID, &deal.Title, &deal.Description, &deal.ServiceType,
		&deal.OriginalPrice, &deal.DiscountPercent, &deal.MinCustomers, &deal.CurrentCustomers,
		&deal.Location, &deal.ServiceArea, &deal.StartDate, &deal.EndDate, &deal.Status)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *Repository) Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	query := `
        INSERT INTO deals (business_id, title, description, service_type, original_price, discount_percent,
                           min_customers, current_customers, location, service_area, start_date, end_date, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10, $11, 'pending')
        RETURNING id, current_customers, status
    `
	err := r.db.QueryRow(ctx, query,
		deal.BusinessID, deal.Title, deal.Description, deal.ServiceType,
		deal.OriginalPrice, deal.DiscountPercent, deal.MinCustomers,
		deal.Location, deal.ServiceArea, deal.StartDate, deal.EndDate,
	).Scan(&deal.ID, &deal.CurrentCustomers, &deal.Status)
	if err != nil {
		zap.L().Error("can't save deal", zap.Error(err))
		return nil, err
	}
	return deal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Deal, error) {
	query := fmt.Sprintf("SELECT %s FROM deals WHERE id = $1", dealColumns)
	deal, err := scanDeal(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deal", zap.Error(err))
		return nil, err
	}
	return deal, nil
}

func (r *Repository) FindByBusiness(ctx context.Context, businessID int) ([]domain.Deal, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM deals
        WHERE business_id = $1
        ORDER BY start_date DESC, id
    `, dealColumns)
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't get business deals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDeals(rows)
}

// FindCandidatesInBBox returns still-joinable deals whose location falls inside
// the bounding box. The exact radius and polygon tests happen in geo.
func (r *Repository) FindCandidatesInBBox(ctx context.Context, box geo.BBox) ([]domain.Deal, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM deals
        WHERE status IN ('pending', 'active')
          AND (location -> 'coordinates' ->> 0)::float8 BETWEEN $1 AND $2
          AND (location -> 'coordinates' ->> 1)::float8 BETWEEN $3 AND $4
        ORDER BY id
    `, dealColumns)
	rows, err := r.db.Query(ctx, query, box.MinLng, box.MaxLng, box.MinLat, box.MaxLat)
	if err != nil {
		zap.L().Error("can't get candidate deals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDeals(rows)
}

// Cancel marks the deal cancelled. Existing bookings are untouched; the
// terminal status simply makes them non-fulfillable.
func (r *Repository) Cancel(ctx context.Context, id int) (*domain.Deal, error) {
	query := fmt.Sprintf(`
        UPDATE deals
        SET status = 'cancelled'
        WHERE id = $1
        RETURNING %s
    `, dealColumns)

	var deal *domain.Deal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		deal, err = scanDeal(r.db.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDealNotFound
		}
		if err != nil {
			zap.L().Error("can't cancel deal", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func collectDeals(rows pgx.Rows) ([]domain.Deal, error) {
	var deals []domain.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			zap.L().Error("can't scan deal row", zap.Error(err))
			return nil, err
		}
		deals = append(deals, *deal)
	}
	return deals, nil
}
