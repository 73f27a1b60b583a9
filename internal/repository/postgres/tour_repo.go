package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"nevadotrek/internal/domain"
)

// tierList maps a tour's pricing tiers onto a jsonb column.
type tierList []domain.PricingTier

func (t tierList) Value() (driver.Value, error) {
	return json.Marshal([]domain.PricingTier(t))
}

func (t *tierList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]domain.PricingTier)(t))
	case string:
		return json.Unmarshal([]byte(v), (*[]domain.PricingTier)(t))
	case nil:
		*t = nil
		return nil
	}
	return fmt.Errorf("unsupported pricing_tiers type %T", src)
}

type tourRepository struct {
	DB *sql.DB
}

func NewTourRepository(db *sql.DB) domain.TourRepository {
	return &tourRepository{
		DB: db,
	}
}

func (r *tourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	query := `
		INSERT INTO tours (id, name_es, name_en, short_description_es, short_description_en, pricing_tiers, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		tour.ID, tour.Name.ES, tour.Name.EN,
		nullString(tour.ShortDescription.ES), nullString(tour.ShortDescription.EN),
		tierList(tour.PricingTiers), tour.IsActive, tour.CreatedAt, tour.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTourExists
		}
		return err
	}
	return nil
}

const tourColumns = `id, name_es, name_en, short_description_es, short_description_en, pricing_tiers, is_active, created_at, updated_at`

func scanTour(row interface{ Scan(...any) error }) (*domain.Tour, error) {
	tour := &domain.Tour{}
	var shortES, shortEN sql.NullString
	var tiers tierList
	err := row.Scan(
		&tour.ID, &tour.Name.ES, &tour.Name.EN, &shortES, &shortEN,
		&tiers, &tour.IsActive, &tour.CreatedAt, &tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	tour.ShortDescription = domain.LocalizedText{ES: shortES.String, EN: shortEN.String}
	tour.PricingTiers = tiers
	return tour, nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`
	tour, err := scanTour(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return tour, nil
}

func (r *tourRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	return tours, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
