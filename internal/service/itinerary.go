// Package service contains the business logic for the itinerary planner API.
// Services validate inputs, enforce business rules, and orchestrate the
// generator, the edit operations, and the session stores.
// Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/itinerary"
	"github.com/pkordes/itinerary-planner/backend/internal/links"
	"github.com/pkordes/itinerary-planner/backend/internal/repo"
)

// DefaultTravelers is assumed when preferences leave the party size unset.
const DefaultTravelers = 2

// MaxDestinationLen bounds the destination in characters.
const MaxDestinationLen = 200

// Generator produces a fresh itinerary. *itinerary.Generator satisfies it.
type Generator interface {
	Generate(destination string, days int) domain.TripItinerary
}

// ItineraryService implements business logic for itinerary sessions.
type ItineraryService struct {
	repo    repo.ItineraryRepo
	gen     Generator
	maxDays int
	log     *slog.Logger

	// edits serializes read-modify-write cycles against the store.
	edits sync.Mutex
}

// NewItineraryService constructs an ItineraryService. maxDays bounds the
// accepted trip length. A nil log discards output.
func NewItineraryService(r repo.ItineraryRepo, g Generator, maxDays int, log *slog.Logger) *ItineraryService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ItineraryService{repo: r, gen: g, maxDays: maxDays, log: log}
}

// Create validates prefs, generates an itinerary, and stores it.
// Missing budget and travellers are defaulted; the stored preferences reflect
// the defaults.
func (s *ItineraryService) Create(ctx context.Context, prefs domain.TravelPreferences) (domain.TripItinerary, error) {
	prefs, err := s.normalizePreferences(prefs)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}

	trip := s.gen.Generate(prefs.Destination, prefs.Days)
	trip.Preferences = &prefs

	stored, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	s.log.InfoContext(ctx, "itinerary generated",
		"id", stored.ID,
		"destination", stored.Destination,
		"days", stored.Duration,
	)
	return stored, nil
}

func (s *ItineraryService) normalizePreferences(p domain.TravelPreferences) (domain.TravelPreferences, error) {
	p = p.Clone()
	p.Destination = strings.TrimSpace(p.Destination)
	if p.Destination == "" {
		return p, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(p.Destination) > MaxDestinationLen {
		return p, fmt.Errorf("%w: destination must be at most %d characters", domain.ErrValidation, MaxDestinationLen)
	}
	if p.Days < 1 || p.Days > s.maxDays {
		return p, fmt.Errorf("%w: days must be between 1 and %d", domain.ErrValidation, s.maxDays)
	}

	if p.Travelers == 0 {
		p.Travelers = DefaultTravelers
	}
	if p.Travelers < 1 {
		return p, fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}

	if p.Budget == "" {
		p.Budget = catalog.DefaultBudget
	}
	if !catalog.IsBudget(p.Budget) {
		return p, fmt.Errorf("%w: unknown budget %q", domain.ErrValidation, p.Budget)
	}

	if len(p.TravelStyles) == 0 {
		return p, fmt.Errorf("%w: at least one travel style is required", domain.ErrValidation)
	}
	styles := make([]string, 0, len(p.TravelStyles))
	for _, st := range p.TravelStyles {
		if !catalog.IsTravelStyle(st) {
			return p, fmt.Errorf("%w: unknown travel style %q", domain.ErrValidation, st)
		}
		if !slices.Contains(styles, st) {
			styles = append(styles, st)
		}
	}
	p.TravelStyles = styles
	return p, nil
}

// GetByID returns a single itinerary.
func (s *ItineraryService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripItinerary, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return t, nil
}

// ListPaged returns one page of stored itineraries and the total count.
func (s *ItineraryService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.TripItinerary{}
	}
	return trips, total, nil
}

// Delete discards an itinerary.
func (s *ItineraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// AddAttractions appends attractions to day. Attractions without an ID
// are treated as custom entries and given one.
func (s *ItineraryService) AddAttractions(ctx context.Context, id uuid.UUID, day int, attractions []domain.Attraction) (domain.TripItinerary, error) {
	attractions = slices.Clone(attractions)
	for i := range attractions {
		if attractions[i].ID == "" {
			attractions[i].ID = "custom-" + uuid.NewString()
		}
	}
	return s.edit(ctx, "AddAttractions", id, func(t domain.TripItinerary) (domain.TripItinerary, error) {
		return itinerary.AddAttractions(t, day, attractions...)
	})
}

// ReplaceAttraction overwrites the attraction of one activity.
// An empty ID keeps the ID of the attraction being replaced.
func (s *ItineraryService) ReplaceAttraction(ctx context.Context, id uuid.UUID, day, index int, a domain.Attraction) (domain.TripItinerary, error) {
	return s.edit(ctx, "ReplaceAttraction", id, func(t domain.TripItinerary) (domain.TripItinerary, error) {
		if a.ID == "" && day >= 1 && day <= len(t.Days) && index >= 0 && index < len(t.Days[day-1].Activities) {
			a.ID = t.Days[day-1].Activities[index].Attraction.ID
		}
		return itinerary.ReplaceAttraction(t, day, index, a)
	})
}

// RemoveActivity deletes one activity by position.
func (s *ItineraryService) RemoveActivity(ctx context.Context, id uuid.UUID, day, index int) (domain.TripItinerary, error) {
	return s.edit(ctx, "RemoveActivity", id, func(t domain.TripItinerary) (domain.TripItinerary, error) {
		return itinerary.RemoveActivity(t, day, index)
	})
}

// RemoveAttraction deletes every activity on day that references attractionID.
func (s *ItineraryService) RemoveAttraction(ctx context.Context, id uuid.UUID, day int, attractionID string) (domain.TripItinerary, error) {
	return s.edit(ctx, "RemoveAttraction", id, func(t domain.TripItinerary) (domain.TripItinerary, error) {
		return itinerary.RemoveAttraction(t, day, attractionID)
	})
}

// ReplaceHotel assigns a hotel to day.
func (s *ItineraryService) ReplaceHotel(ctx context.Context, id uuid.UUID, day int, h domain.Hotel) (domain.TripItinerary, error) {
	return s.edit(ctx, "ReplaceHotel", id, func(t domain.TripItinerary) (domain.TripItinerary, error) {
		return itinerary.ReplaceHotel(t, day, h)
	})
}

// Links returns the outbound booking and directions links for an itinerary.
func (s *ItineraryService) Links(ctx context.Context, id uuid.UUID) (domain.ItineraryLinks, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ItineraryLinks{}, fmt.Errorf("service.ItineraryService.Links: %w", err)
	}
	return links.ForItinerary(t), nil
}

// edit loads the itinerary, applies fn, and stores the result. On any error
// the stored itinerary is left as it was.
func (s *ItineraryService) edit(ctx context.Context, op string, id uuid.UUID, fn func(domain.TripItinerary) (domain.TripItinerary, error)) (domain.TripItinerary, error) {
	s.edits.Lock()
	defer s.edits.Unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.%s: %w", op, err)
	}
	next, err := fn(current)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.%s: %w", op, err)
	}
	stored, err := s.repo.Update(ctx, next)
	if err != nil {
		return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.%s: %w", op, err)
	}
	s.log.DebugContext(ctx, "itinerary edited", "id", id, "op", op)
	return stored, nil
}
