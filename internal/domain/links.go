package domain

// Link is a labelled outbound URL to a third-party site.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DayLinks holds the outbound links for a single day of an itinerary.
type DayLinks struct {
	Day          int    `json:"day"`
	HotelBooking *Link  `json:"hotel_booking,omitempty"`
	Directions   []Link `json:"directions"`
}

// ItineraryLinks is the full set of outbound links for an itinerary.
type ItineraryLinks struct {
	MapSearch   Link       `json:"map_search"`
	HotelSearch []Link     `json:"hotel_search"`
	Days        []DayLinks `json:"days"`
}
