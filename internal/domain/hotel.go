package domain

// HotelType is the archetype a hotel is instantiated from.
type HotelType string

const (
	HotelLuxury   HotelType = "luxury"
	HotelBusiness HotelType = "business"
	HotelBoutique HotelType = "boutique"
	HotelBudget   HotelType = "budget"
	HotelHostel   HotelType = "hostel"
	HotelResort   HotelType = "resort"
)

// PriceRange is an inclusive nightly price range in whole currency units.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Midpoint returns the floor of the range midpoint.
func (r PriceRange) Midpoint() int {
	return (r.Min + r.Max) / 2
}

// HotelTemplate describes a hotel archetype. Concrete Hotels are built from a
// template by interpolating the destination into the name.
type HotelTemplate struct {
	Type       HotelType  `json:"type"`
	Name       string     `json:"name"`
	Rating     float64    `json:"rating"`
	PriceRange PriceRange `json:"price_range"`
	Amenities  []string   `json:"amenities"`
}

// Hotel is a concrete place to stay. Price is per night.
type Hotel struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Rating      float64     `json:"rating"`
	Price       int         `json:"price"`
	Amenities   []string    `json:"amenities"`
	Distance    string      `json:"distance"`
	Coordinates Coordinates `json:"coordinates"`
}

// Clone returns a copy of the hotel that shares no slices with the original.
func (h Hotel) Clone() Hotel {
	out := h
	if h.Amenities != nil {
		out.Amenities = append([]string(nil), h.Amenities...)
	}
	return out
}
