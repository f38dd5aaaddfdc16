package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams_defaults(t *testing.T) {
	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestNewPaginationParams_capsLimit(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(2), intPtr(500))
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit)
}

func TestNewPaginationParams_ignoresNonPositive(t *testing.T) {
	p := domain.NewPaginationParams(intPtr(0), intPtr(-3))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestPaginationParams_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		total  int
		lo, hi int
	}{
		{"first page", 1, 10, 25, 0, 10},
		{"partial last page", 3, 10, 25, 20, 25},
		{"past the end", 5, 10, 25, 25, 25},
		{"empty collection", 1, 10, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.NewPaginationParams(intPtr(tc.page), intPtr(tc.limit))
			lo, hi := p.Bounds(tc.total)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestPriceRange_Midpoint_floors(t *testing.T) {
	assert.Equal(t, 115, domain.PriceRange{Min: 80, Max: 150}.Midpoint())
	assert.Equal(t, 27, domain.PriceRange{Min: 15, Max: 40}.Midpoint())
}

func tripFixture() domain.TripItinerary {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	hotel := domain.Hotel{ID: "h1", Name: "Paris Boutique Hotel", Amenities: []string{"WiFi", "Bar"}}
	return domain.TripItinerary{
		Destination: "Paris",
		Duration:    1,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
		Days: []domain.DayItinerary{{
			Day:   1,
			Date:  start,
			Title: "City Exploration & Landmarks",
			Activities: []domain.Activity{
				{Time: "9:00 AM", Attraction: domain.Attraction{ID: "paris-1", Name: "Eiffel Tower"}},
			},
			Hotel: &hotel,
		}},
		Hotels:      []domain.Hotel{hotel.Clone()},
		Preferences: &domain.TravelPreferences{Destination: "Paris", Days: 1, TravelStyles: []string{"cultural"}},
	}
}

// TestTripItinerary_Clone_isDeep verifies that mutating every nested
// collection of a clone leaves the original untouched.
func TestTripItinerary_Clone_isDeep(t *testing.T) {
	orig := tripFixture()
	cp := orig.Clone()

	cp.Days[0].Activities[0].Attraction.Name = "Changed"
	cp.Days[0].Hotel.Name = "Changed"
	cp.Days[0].Hotel.Amenities[0] = "Changed"
	cp.Hotels[0].Amenities[0] = "Changed"
	cp.Preferences.TravelStyles[0] = "changed"

	require.Len(t, orig.Days, 1)
	assert.Equal(t, "Eiffel Tower", orig.Days[0].Activities[0].Attraction.Name)
	assert.Equal(t, "Paris Boutique Hotel", orig.Days[0].Hotel.Name)
	assert.Equal(t, "WiFi", orig.Days[0].Hotel.Amenities[0])
	assert.Equal(t, "WiFi", orig.Hotels[0].Amenities[0])
	assert.Equal(t, "cultural", orig.Preferences.TravelStyles[0])
}

func TestDayItinerary_Attractions(t *testing.T) {
	day := tripFixture().Days[0]
	got := day.Attractions()
	require.Len(t, got, 1)
	assert.Equal(t, "paris-1", got[0].ID)
}
