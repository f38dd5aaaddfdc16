package itinerary

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// Placeholders used for activities added after generation.
const (
	PlaceholderTime      = "TBD"
	PlaceholderTransport = "To be determined"
)

// Every edit below takes the itinerary by value, works on a deep copy, and
// returns the copy. On error the input is returned as-is. Costs are never
// recomputed: TotalCost fields keep their generated values after edits.

// ValidateAttraction checks the fields a traveller must supply when adding or
// editing an attraction. Name and description must be non-blank.
func ValidateAttraction(a domain.Attraction) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: attraction name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("%w: attraction description is required", domain.ErrValidation)
	}
	return nil
}

// AddAttractions appends one activity per attraction to day, with placeholder
// time and transport and zero transport cost.
func AddAttractions(trip domain.TripItinerary, day int, attractions ...domain.Attraction) (domain.TripItinerary, error) {
	if len(attractions) == 0 {
		return trip, fmt.Errorf("%w: at least one attraction is required", domain.ErrValidation)
	}
	for _, a := range attractions {
		if err := ValidateAttraction(a); err != nil {
			return trip, err
		}
	}

	next := trip.Clone()
	d, err := dayAt(&next, day)
	if err != nil {
		return trip, err
	}
	for _, a := range attractions {
		d.Activities = append(d.Activities, domain.Activity{
			Time:          PlaceholderTime,
			Attraction:    a,
			Transport:     PlaceholderTransport,
			TransportCost: 0,
		})
	}
	return next, nil
}

// ReplaceAttraction overwrites the attraction of the activity at index on day.
// Time and transport of the activity are kept.
func ReplaceAttraction(trip domain.TripItinerary, day, index int, a domain.Attraction) (domain.TripItinerary, error) {
	if err := ValidateAttraction(a); err != nil {
		return trip, err
	}

	next := trip.Clone()
	d, err := dayAt(&next, day)
	if err != nil {
		return trip, err
	}
	if err := checkIndex(d, index); err != nil {
		return trip, err
	}
	d.Activities[index].Attraction = a
	return next, nil
}

// RemoveActivity deletes the activity at index on day. Later activities keep
// their times and costs.
func RemoveActivity(trip domain.TripItinerary, day, index int) (domain.TripItinerary, error) {
	next := trip.Clone()
	d, err := dayAt(&next, day)
	if err != nil {
		return trip, err
	}
	if err := checkIndex(d, index); err != nil {
		return trip, err
	}
	d.Activities = append(d.Activities[:index], d.Activities[index+1:]...)
	return next, nil
}

// RemoveAttraction deletes every activity on day that references
// attractionID. It fails with domain.ErrNotFound when none does.
func RemoveAttraction(trip domain.TripItinerary, day int, attractionID string) (domain.TripItinerary, error) {
	next := trip.Clone()
	d, err := dayAt(&next, day)
	if err != nil {
		return trip, err
	}

	kept := d.Activities[:0]
	for _, act := range d.Activities {
		if act.Attraction.ID != attractionID {
			kept = append(kept, act)
		}
	}
	if len(kept) == len(d.Activities) {
		return trip, fmt.Errorf("%w: attraction %q on day %d", domain.ErrNotFound, attractionID, day)
	}
	d.Activities = kept
	return next, nil
}

// ReplaceHotel assigns hotel to day. The trip's hotel list and cost
// breakdown are left as they were.
func ReplaceHotel(trip domain.TripItinerary, day int, hotel domain.Hotel) (domain.TripItinerary, error) {
	if strings.TrimSpace(hotel.Name) == "" {
		return trip, fmt.Errorf("%w: hotel name is required", domain.ErrValidation)
	}

	next := trip.Clone()
	d, err := dayAt(&next, day)
	if err != nil {
		return trip, err
	}
	h := hotel.Clone()
	d.Hotel = &h
	return next, nil
}

// dayAt returns a pointer into trip.Days for the 1-based day number.
func dayAt(trip *domain.TripItinerary, day int) (*domain.DayItinerary, error) {
	if day < 1 || day > len(trip.Days) {
		return nil, fmt.Errorf("%w: day %d", domain.ErrNotFound, day)
	}
	return &trip.Days[day-1], nil
}

func checkIndex(d *domain.DayItinerary, index int) error {
	if index < 0 || index >= len(d.Activities) {
		return fmt.Errorf("%w: activity %d on day %d", domain.ErrNotFound, index, d.Day)
	}
	return nil
}
