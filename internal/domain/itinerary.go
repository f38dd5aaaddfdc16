// Package domain contains the core data types for the itinerary planner.
// This package has no dependencies on other internal packages and is
// imported by every other internal package (catalog, itinerary, repo,
// service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Attraction is a single place or experience that can be scheduled into a day.
// Price and Duration are display strings ("$28", "Free", "2-3 hours").
type Attraction struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Price       string      `json:"price"`
	Duration    string      `json:"duration"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
}

// Activity is one line item of a day: an attraction at a time of day, with the
// transport used to reach it.
type Activity struct {
	Time          string     `json:"time"`
	Attraction    Attraction `json:"attraction"`
	Transport     string     `json:"transport,omitempty"`
	TransportCost int        `json:"transport_cost"`
}

// DayItinerary is the plan for a single day of the trip.
// TotalCost is an estimate assigned at generation time; it is not a sum of
// the activities and is not recomputed after edits.
type DayItinerary struct {
	Day        int        `json:"day"`
	Date       time.Time  `json:"date"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	Hotel      *Hotel     `json:"hotel,omitempty"` // nil when no hotel is assigned
	TotalCost  int        `json:"total_cost"`
}

// CostBreakdown splits the trip-level estimate into spending categories.
type CostBreakdown struct {
	Accommodation int `json:"accommodation"`
	Transport     int `json:"transport"`
	Activities    int `json:"activities"`
	Food          int `json:"food"`
}

// TripItinerary is the top-level aggregate: the whole generated plan.
// ID, Preferences, CreatedAt and UpdatedAt are assigned by the service layer
// when the itinerary is stored; the generator leaves them zero.
type TripItinerary struct {
	ID            uuid.UUID          `json:"id"`
	Destination   string             `json:"destination"`
	Duration      int                `json:"duration"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	Days          []DayItinerary     `json:"days"`
	TotalCost     int                `json:"total_cost"`
	CostBreakdown CostBreakdown      `json:"cost_breakdown"`
	Hotels        []Hotel            `json:"hotels"`
	Preferences   *TravelPreferences `json:"preferences,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Clone returns a deep copy of the itinerary. Edits applied to the copy never
// reach the original, and vice versa.
func (t TripItinerary) Clone() TripItinerary {
	out := t
	if t.Days != nil {
		out.Days = make([]DayItinerary, len(t.Days))
		for i, d := range t.Days {
			out.Days[i] = d.Clone()
		}
	}
	if t.Hotels != nil {
		out.Hotels = make([]Hotel, len(t.Hotels))
		for i, h := range t.Hotels {
			out.Hotels[i] = h.Clone()
		}
	}
	if t.Preferences != nil {
		p := t.Preferences.Clone()
		out.Preferences = &p
	}
	return out
}

// Clone returns a deep copy of the day.
func (d DayItinerary) Clone() DayItinerary {
	out := d
	if d.Activities != nil {
		// Activity holds only value fields, so copying the slice is enough.
		out.Activities = append([]Activity(nil), d.Activities...)
	}
	if d.Hotel != nil {
		h := d.Hotel.Clone()
		out.Hotel = &h
	}
	return out
}

// Attractions returns the attractions scheduled on the day, in order.
func (d DayItinerary) Attractions() []Attraction {
	out := make([]Attraction, len(d.Activities))
	for i, a := range d.Activities {
		out[i] = a.Attraction
	}
	return out
}
