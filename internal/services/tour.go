package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"nevadotrek/internal/domain"
)

// tourIDPattern keeps tour ids slug-like so derived event keys stay URL-safe.
var tourIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type tourService struct {
	tourRepo domain.TourRepository
	now      func() time.Time
}

// NewTourService creates a TourService over the given repository.
func NewTourService(tourRepo domain.TourRepository) domain.TourService {
	return &tourService{
		tourRepo: tourRepo,
		now:      time.Now,
	}
}

func (s *tourService) Create(ctx context.Context, tour *domain.Tour) error {
	if err := validateTour(tour); err != nil {
		return err
	}

	now := s.now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		if errors.Is(err, domain.ErrTourExists) {
			return domain.ErrTourExists
		}
		return fmt.Errorf("create tour: %w", err)
	}
	return nil
}

func validateTour(tour *domain.Tour) error {
	if tour.ID == "" {
		return fmt.Errorf("%w: tour id is required", domain.ErrInvalidInput)
	}
	if !tourIDPattern.MatchString(tour.ID) {
		return fmt.Errorf("%w: tour id must be a lowercase slug", domain.ErrInvalidInput)
	}
	if !tour.Name.Complete() {
		return fmt.Errorf("%w: name requires both es and en", domain.ErrInvalidInput)
	}
	// Bilingual fields come in pairs or not at all.
	if !tour.ShortDescription.Empty() && !tour.ShortDescription.Complete() {
		return fmt.Errorf("%w: short description requires both es and en", domain.ErrInvalidInput)
	}
	if len(tour.PricingTiers) == 0 {
		return fmt.Errorf("%w: at least one pricing tier is required", domain.ErrInvalidInput)
	}
	for i, t := range tour.PricingTiers {
		if t.MinPax < 1 {
			return fmt.Errorf("%w: tier %d: min pax must be at least 1", domain.ErrInvalidInput, i)
		}
		if t.PricePerPerson < 0 {
			return fmt.Errorf("%w: tier %d: price must not be negative", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

func (s *tourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: tour id is required", domain.ErrInvalidInput)
	}
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tour: %w", err)
	}
	return tour, nil
}

func (s *tourService) List(ctx context.Context, activeOnly bool) ([]*domain.Tour, error) {
	tours, err := s.tourRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}
