package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// shortlistSize is the maximum number of hotels offered with a generated trip.
const shortlistSize = 3

// hotelTemplates is ordered; shortlists and browse results follow this order.
var hotelTemplates = []domain.HotelTemplate{
	{
		Type:       domain.HotelLuxury,
		Name:       "5-Star Luxury Hotel",
		Rating:     4.8,
		PriceRange: domain.PriceRange{Min: 200, Max: 500},
		Amenities:  []string{"Pool", "Spa", "Fine Dining", "Concierge", "Gym"},
	},
	{
		Type:       domain.HotelBusiness,
		Name:       "Business Hotel",
		Rating:     4.5,
		PriceRange: domain.PriceRange{Min: 100, Max: 200},
		Amenities:  []string{"WiFi", "Business Center", "Restaurant", "Gym"},
	},
	{
		Type:       domain.HotelBoutique,
		Name:       "Boutique Hotel",
		Rating:     4.6,
		PriceRange: domain.PriceRange{Min: 80, Max: 150},
		Amenities:  []string{"WiFi", "Breakfast", "Bar", "Local Art"},
	},
	{
		Type:       domain.HotelBudget,
		Name:       "Budget Hotel",
		Rating:     4.2,
		PriceRange: domain.PriceRange{Min: 30, Max: 80},
		Amenities:  []string{"WiFi", "Breakfast", "24/7 Reception"},
	},
	{
		Type:       domain.HotelHostel,
		Name:       "Backpacker Hostel",
		Rating:     4.3,
		PriceRange: domain.PriceRange{Min: 15, Max: 40},
		Amenities:  []string{"WiFi", "Shared Kitchen", "Lockers", "Common Area"},
	},
	{
		Type:       domain.HotelResort,
		Name:       "Beach Resort",
		Rating:     4.7,
		PriceRange: domain.PriceRange{Min: 150, Max: 400},
		Amenities:  []string{"Beach Access", "Pool", "Spa", "Multiple Restaurants"},
	},
}

// HotelTemplates returns the hotel archetypes in catalog order.
func (c *Catalog) HotelTemplates() []domain.HotelTemplate {
	out := make([]domain.HotelTemplate, len(c.hotels))
	for i, t := range c.hotels {
		t.Amenities = slices.Clone(t.Amenities)
		out[i] = t
	}
	return out
}

// ShortlistTypes returns the archetypes offered for destination. A destination
// mentioning "budget" (any case) gets budget and hostel; everything else gets
// luxury, boutique, and business.
func ShortlistTypes(destination string) []domain.HotelType {
	if strings.Contains(strings.ToLower(destination), "budget") {
		return []domain.HotelType{domain.HotelBudget, domain.HotelHostel}
	}
	return []domain.HotelType{domain.HotelLuxury, domain.HotelBoutique, domain.HotelBusiness}
}

// HotelShortlist returns up to three hotels for destination, built from the
// archetypes selected by ShortlistTypes in catalog order.
// IDs are "h1".."h3" and distances "2 km", "4 km", "6 km".
func (c *Catalog) HotelShortlist(destination string) []domain.Hotel {
	types := ShortlistTypes(destination)
	out := []domain.Hotel{}
	for _, t := range c.hotels {
		if len(out) == shortlistSize {
			break
		}
		if !slices.Contains(types, t.Type) {
			continue
		}
		i := len(out)
		out = append(out, instantiate(t, destination,
			"h"+strconv.Itoa(i+1),
			strconv.Itoa((i+1)*2)+" km"))
	}
	return out
}

// Hotel price bands accepted by HotelFilter.Band.
const (
	BandAll      = "all"
	BandLuxury   = "luxury"
	BandMidRange = "mid-range"
	BandBudget   = "budget"
)

// IsHotelBand reports whether band is a recognised HotelFilter.Band value.
func IsHotelBand(band string) bool {
	switch band {
	case "", BandAll, BandLuxury, BandMidRange, BandBudget:
		return true
	}
	return false
}

// Default browse price bounds, inclusive.
const (
	DefaultMinPrice = 50
	DefaultMaxPrice = 300
)

// HotelFilter narrows BrowseHotels. Nil bounds use the defaults.
type HotelFilter struct {
	MinPrice *int
	MaxPrice *int
	Band     string
}

// BrowseHotels instantiates every archetype for destination and filters by
// nightly price (inclusive) and band: luxury above 200, mid-range 80 to 200,
// budget below 80. IDs are "hotel-0".."hotel-5".
func (c *Catalog) BrowseHotels(destination string, f HotelFilter) []domain.Hotel {
	lo, hi := DefaultMinPrice, DefaultMaxPrice
	if f.MinPrice != nil {
		lo = *f.MinPrice
	}
	if f.MaxPrice != nil {
		hi = *f.MaxPrice
	}

	out := []domain.Hotel{}
	for i, t := range c.hotels {
		distance := strconv.FormatFloat(float64(i+1)*1.5, 'f', -1, 64) + " km from city center"
		h := instantiate(t, destination, "hotel-"+strconv.Itoa(i), distance)
		if h.Price < lo || h.Price > hi {
			continue
		}
		if !inBand(h.Price, f.Band) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func inBand(price int, band string) bool {
	switch band {
	case BandLuxury:
		return price > 200
	case BandMidRange:
		return price >= 80 && price <= 200
	case BandBudget:
		return price < 80
	default:
		return true
	}
}

func instantiate(t domain.HotelTemplate, destination, id, distance string) domain.Hotel {
	return domain.Hotel{
		ID:        id,
		Name:      destination + " " + t.Name,
		Rating:    t.Rating,
		Price:     t.PriceRange.Midpoint(),
		Amenities: slices.Clone(t.Amenities),
		Distance:  distance,
	}
}
