package domain

import (
	"context"
	"time"
)

// LocalizedText is a bilingual display field. Both languages are required
// together: a tour either carries a field in Spanish and English, or not at all.
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// Empty reports whether neither language is set.
func (t LocalizedText) Empty() bool {
	return t.ES == "" && t.EN == ""
}

// Complete reports whether both languages are set.
func (t LocalizedText) Complete() bool {
	return t.ES != "" && t.EN != ""
}

// PricingTier is one row of a tour's volume price table: groups of at least
// MinPax people pay PricePerPerson each.
type PricingTier struct {
	MinPax         int   `json:"min_pax"`
	PricePerPerson int64 `json:"price_per_person"`
}

// Tour is a bookable product template. Its id is chosen by the admin who
// creates it (slug-like) and referenced by events and bookings.
type Tour struct {
	ID               string        `json:"id"`
	Name             LocalizedText `json:"name"`
	ShortDescription LocalizedText `json:"short_description,omitempty"`
	PricingTiers     []PricingTier `json:"pricing_tiers"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// TourRepository defines storage operations for tours.
type TourRepository interface {
	Create(ctx context.Context, tour *Tour) error
	GetByID(ctx context.Context, id string) (*Tour, error)
	// List returns tours ordered by creation time descending. With
	// activeOnly set, deactivated tours are excluded.
	List(ctx context.Context, activeOnly bool) ([]*Tour, error)
}

// TourService defines tour catalog operations.
type TourService interface {
	// Create validates and stores a new tour. Admin only.
	Create(ctx context.Context, tour *Tour) error
	GetByID(ctx context.Context, id string) (*Tour, error)
	List(ctx context.Context, activeOnly bool) ([]*Tour, error)
}
