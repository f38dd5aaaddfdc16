// Package testutil provides shared fixtures for tests: a fixed clock, the
// embedded catalog, and generated itineraries.
package testutil

import (
	"testing"
	"time"

	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/itinerary"
)

// Epoch is the instant returned by FixedClock.
var Epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports Epoch.
func FixedClock() func() time.Time {
	return func() time.Time { return Epoch }
}

// Catalog loads the embedded catalog, failing the test on error.
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("testutil.Catalog: %v", err)
	}
	return c
}

// Generator returns a generator over the embedded catalog that starts every
// itinerary at Epoch.
func Generator(t testing.TB) *itinerary.Generator {
	t.Helper()
	return itinerary.NewGenerator(Catalog(t), FixedClock())
}

// Itinerary generates an itinerary for destination starting at Epoch.
func Itinerary(t testing.TB, destination string, days int) domain.TripItinerary {
	t.Helper()
	return Generator(t).Generate(destination, days)
}
