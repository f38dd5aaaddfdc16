// Package repo contains the session stores for the itinerary planner API.
// Each resource has its own file with an interface and an in-memory
// implementation. Stores hand out deep copies, so a caller can never mutate
// stored state without going through Update.
// No business logic lives here, only storage and lookup.
package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// ItineraryRepo defines the storage operations for itineraries.
// The service layer depends on this interface, not the concrete
// implementation, which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create stores a new itinerary and returns the stored record with ID,
	// CreatedAt, and UpdatedAt populated.
	Create(ctx context.Context, trip domain.TripItinerary) (domain.TripItinerary, error)

	// GetByID retrieves a single itinerary.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripItinerary, error)

	// ListPaged returns one page of itineraries, newest first, and the total
	// number of stored itineraries.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error)

	// Update replaces a stored itinerary and returns the stored record with
	// UpdatedAt refreshed. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, trip domain.TripItinerary) (domain.TripItinerary, error)

	// Delete removes an itinerary. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memItineraryRepo is the in-memory implementation of ItineraryRepo.
type memItineraryRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]domain.TripItinerary
	now   func() time.Time
}

// NewItineraryRepo constructs an empty in-memory ItineraryRepo.
// now stamps CreatedAt and UpdatedAt; nil uses time.Now.
func NewItineraryRepo(now func() time.Time) ItineraryRepo {
	if now == nil {
		now = time.Now
	}
	return &memItineraryRepo{trips: map[uuid.UUID]domain.TripItinerary{}, now: now}
}

func (r *memItineraryRepo) Create(_ context.Context, trip domain.TripItinerary) (domain.TripItinerary, error) {
	stored := trip.Clone()
	stored.ID = uuid.New()
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	r.mu.Lock()
	r.trips[stored.ID] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

func (r *memItineraryRepo) GetByID(_ context.Context, id uuid.UUID) (domain.TripItinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return domain.TripItinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", domain.ErrNotFound)
	}
	return t.Clone(), nil
}

func (r *memItineraryRepo) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error) {
	r.mu.RLock()
	all := make([]domain.TripItinerary, 0, len(r.trips))
	for _, t := range r.trips {
		all = append(all, t)
	}
	r.mu.RUnlock()

	// Newest first; ties broken by ID so pages are stable.
	slices.SortFunc(all, func(a, b domain.TripItinerary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	lo, hi := p.Bounds(len(all))
	page := make([]domain.TripItinerary, 0, hi-lo)
	for _, t := range all[lo:hi] {
		page = append(page, t.Clone())
	}
	return page, len(all), nil
}

func (r *memItineraryRepo) Update(_ context.Context, trip domain.TripItinerary) (domain.TripItinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.trips[trip.ID]
	if !ok {
		return domain.TripItinerary{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", domain.ErrNotFound)
	}
	stored := trip.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.now().UTC()
	r.trips[stored.ID] = stored

	return stored.Clone(), nil
}

func (r *memItineraryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.trips, id)
	return nil
}
