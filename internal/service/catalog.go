package service

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/links"
)

// CatalogService exposes the static catalog with request validation.
type CatalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// Options returns the travel styles and budget ranges.
func (s *CatalogService) Options() domain.QuestionnaireOptions {
	return domain.QuestionnaireOptions{TravelStyles: catalog.TravelStyles(), BudgetRanges: catalog.BudgetRanges()}
}

// Attractions returns suggestions for destination narrowed by q.
func (s *CatalogService) Attractions(destination string, q catalog.AttractionQuery) ([]domain.Attraction, error) {
	destination, err := requireDestination(destination)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Attractions: %w", err)
	}
	return s.catalog.FindAttractions(destination, q), nil
}

// Categories returns "All" followed by the destination's attraction categories.
func (s *CatalogService) Categories(destination string) ([]string, error) {
	destination, err := requireDestination(destination)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Categories: %w", err)
	}
	return s.catalog.Categories(destination), nil
}

// Hotels browses the hotel archetypes instantiated for destination.
func (s *CatalogService) Hotels(destination string, f catalog.HotelFilter) ([]domain.Hotel, error) {
	destination, err := requireDestination(destination)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Hotels: %w", err)
	}
	if !catalog.IsHotelBand(f.Band) {
		return nil, fmt.Errorf("service.CatalogService.Hotels: %w: unknown hotel type %q", domain.ErrValidation, f.Band)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, fmt.Errorf("service.CatalogService.Hotels: %w: min_price must not exceed max_price", domain.ErrValidation)
	}
	return s.catalog.BrowseHotels(destination, f), nil
}

// Transport returns the options of kind ("" for all). When from and to are
// both set the plan also carries driving and transit directions.
func (s *CatalogService) Transport(kind, from, to string) (domain.TransportPlan, error) {
	opts, ok := s.catalog.TransportOptions(kind)
	if !ok {
		return domain.TransportPlan{}, fmt.Errorf("service.CatalogService.Transport: %w: unknown transport type %q", domain.ErrValidation, kind)
	}

	plan := domain.TransportPlan{Options: opts}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from != "" && to != "" {
		plan.Directions = &domain.Link{Label: "Google Maps", URL: links.Directions(from, to)}
		plan.Transit = &domain.Link{Label: "Public Transit", URL: links.TransitDirections(from, to)}
	}
	return plan, nil
}

func requireDestination(destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return "", fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	return destination, nil
}
