// Package itinerary builds and edits trip itineraries.
//
// Generation is deterministic slot filling: every day takes the next three
// attractions of the destination pool (wrapping around when the pool runs
// out), pairs each with a fixed transport rule, and is given a theme title, a
// hotel from the shortlist, and a fixed cost estimate. Edits are pure
// functions that return a new itinerary and never touch their input.
package itinerary

import (
	"time"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// SlotsPerDay is the number of activities generated for each day.
const SlotsPerDay = 3

// Slot times, in order.
const (
	MorningTime   = "9:00 AM"
	AfternoonTime = "2:00 PM"
	EveningTime   = "6:00 PM"
)

// Transport rules for generated activities.
const (
	ArrivalTransport     = "Airport Transfer"
	ArrivalTransportCost = 30
	MorningTransport     = "Taxi"
	MorningTransportCost = 15
	AfternoonTransport   = "Auto-rickshaw"
	AfternoonCost        = 8
	EveningTransport     = "Walk"
	EveningCost          = 0
)

// Cost estimates. A day costs DayBaseCost + day*DayCostStep; the trip-level
// figures are per-day constants multiplied by the trip length. None of them
// are derived from the activity or hotel prices in the itinerary.
const (
	DayBaseCost = 350
	DayCostStep = 50

	TripCostPerDay          = 400
	AccommodationCostPerDay = 200
	TransportCostPerDay     = 50
	ActivitiesCostPerDay    = 80
	FoodCostPerDay          = 70
)

var dayThemes = []string{
	"City Exploration & Landmarks",
	"Cultural Heritage Tour",
	"Adventure & Nature Discovery",
	"Local Markets & Shopping",
	"Scenic Views & Entertainment",
	"Food & Culinary Journey",
	"Day Trip & Excursions",
	"Museums & Art Galleries",
	"Relaxation & Wellness",
	"Nightlife & Entertainment",
}

// Themes returns the cyclic list of day titles.
func Themes() []string {
	return append([]string(nil), dayThemes...)
}

// Catalog supplies the pools a Generator draws from.
// *catalog.Catalog satisfies it.
type Catalog interface {
	ResolveAttractions(destination string) []domain.Attraction
	HotelShortlist(destination string) []domain.Hotel
}

// Generator resolves pools for a destination and assembles an itinerary
// starting at the current time.
type Generator struct {
	catalog Catalog
	now     func() time.Time
}

// NewGenerator constructs a Generator. A nil now uses time.Now.
func NewGenerator(c Catalog, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{catalog: c, now: now}
}

// Generate builds a days-long itinerary for destination starting now.
// Callers must ensure days >= 1; unknown destinations fall back to generic
// content and never fail.
func (g *Generator) Generate(destination string, days int) domain.TripItinerary {
	return Assemble(
		destination,
		days,
		g.catalog.ResolveAttractions(destination),
		g.catalog.HotelShortlist(destination),
		g.now(),
	)
}

// StartIndex returns the pool index of day's first attraction:
// ((day-1) * SlotsPerDay) mod poolLen.
func StartIndex(day, poolLen int) int {
	return ((day - 1) * SlotsPerDay) % poolLen
}

// HotelIndex returns the shortlist index assigned to day: day mod 2.
// With a three-hotel shortlist the third entry is never chosen.
func HotelIndex(day int) int {
	return day % 2
}

// Assemble builds the itinerary from explicit pools. Every activity holds its
// own copy of the attraction; every day holds its own copy of its hotel.
// An empty pool yields days without activities.
func Assemble(destination string, days int, pool []domain.Attraction, hotels []domain.Hotel, start time.Time) domain.TripItinerary {
	trip := domain.TripItinerary{
		Destination: destination,
		Duration:    days,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days),
		Days:        make([]domain.DayItinerary, 0, max(days, 0)),
		TotalCost:   days * TripCostPerDay,
		CostBreakdown: domain.CostBreakdown{
			Accommodation: days * AccommodationCostPerDay,
			Transport:     days * TransportCostPerDay,
			Activities:    days * ActivitiesCostPerDay,
			Food:          days * FoodCostPerDay,
		},
		Hotels: make([]domain.Hotel, len(hotels)),
	}
	for i, h := range hotels {
		trip.Hotels[i] = h.Clone()
	}

	for d := 1; d <= days; d++ {
		day := domain.DayItinerary{
			Day:        d,
			Date:       start.AddDate(0, 0, d-1),
			Title:      dayThemes[(d-1)%len(dayThemes)],
			Activities: dayActivities(d, pool),
			TotalCost:  DayBaseCost + d*DayCostStep,
		}
		if i := HotelIndex(d); i < len(hotels) {
			h := hotels[i].Clone()
			day.Hotel = &h
		}
		trip.Days = append(trip.Days, day)
	}
	return trip
}

func dayActivities(day int, pool []domain.Attraction) []domain.Activity {
	n := len(pool)
	if n == 0 {
		return []domain.Activity{}
	}
	start := StartIndex(day, n)

	morning, morningCost := MorningTransport, MorningTransportCost
	if day == 1 {
		morning, morningCost = ArrivalTransport, ArrivalTransportCost
	}

	return []domain.Activity{
		{Time: MorningTime, Attraction: pool[start%n], Transport: morning, TransportCost: morningCost},
		{Time: AfternoonTime, Attraction: pool[(start+1)%n], Transport: AfternoonTransport, TransportCost: AfternoonCost},
		{Time: EveningTime, Attraction: pool[(start+2)%n], Transport: EveningTransport, TransportCost: EveningCost},
	}
}
