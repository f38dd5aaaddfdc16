// Package links builds outbound URLs to third-party booking and mapping
// sites. Every function is pure; interpolated values are escaped for the URL
// component they land in.
package links

import (
	"net/url"
	"time"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// DateLayout is the check-in/check-out format the booking sites accept.
const DateLayout = "2006-01-02"

// BookingHotel links to a Booking.com search for a named hotel.
func BookingHotel(hotelName string, checkIn, checkOut time.Time) string {
	return "https://www.booking.com/search.html?ss=" + url.QueryEscape(hotelName) +
		"&checkin=" + checkIn.Format(DateLayout) +
		"&checkout=" + checkOut.Format(DateLayout)
}

// Expedia links to an Expedia hotel search for destination and dates.
func Expedia(destination string, checkIn, checkOut time.Time) string {
	return "https://www.expedia.com/Hotels-Search?destination=" + url.QueryEscape(destination) +
		"&startDate=" + checkIn.Format(DateLayout) +
		"&endDate=" + checkOut.Format(DateLayout)
}

// HotelsCom links to a Hotels.com search for destination and dates.
func HotelsCom(destination string, checkIn, checkOut time.Time) string {
	return "https://www.hotels.com/search.do?q-destination=" + url.QueryEscape(destination) +
		"&q-check-in=" + checkIn.Format(DateLayout) +
		"&q-check-out=" + checkOut.Format(DateLayout)
}

// Airbnb links to Airbnb stays in destination.
func Airbnb(destination string) string {
	return "https://www.airbnb.com/s/" + url.PathEscape(destination)
}

// Agoda links to an Agoda city search.
func Agoda(destination string) string {
	return "https://www.agoda.com/search?city=" + url.QueryEscape(destination)
}

// TripAdvisor links to TripAdvisor's hotel listing for destination.
func TripAdvisor(destination string) string {
	return "https://www.tripadvisor.com/Hotels-g1-" + url.PathEscape(destination) + "-Hotels.html"
}

// Directions links to Google Maps driving directions in path form.
func Directions(from, to string) string {
	return "https://www.google.com/maps/dir/" + url.PathEscape(from) + "/" + url.PathEscape(to)
}

// TransitDirections links to Google Maps public transit directions.
func TransitDirections(from, to string) string {
	return "https://www.google.com/maps/dir/?api=1&origin=" + url.QueryEscape(from) +
		"&destination=" + url.QueryEscape(to) +
		"&travelmode=transit"
}

// MapSearch links to a Google Maps search for query.
func MapSearch(query string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

// ForItinerary bundles the links for a whole trip: a map search for the
// destination, hotel searches across the trip's date range, and per day a
// booking link for the assigned hotel (one night from the day's date) and
// directions between consecutive activities.
func ForItinerary(trip domain.TripItinerary) domain.ItineraryLinks {
	dest := trip.Destination
	out := domain.ItineraryLinks{
		MapSearch: domain.Link{Label: "Google Maps", URL: MapSearch(dest)},
		HotelSearch: []domain.Link{
			{Label: "Expedia", URL: Expedia(dest, trip.StartDate, trip.EndDate)},
			{Label: "Hotels.com", URL: HotelsCom(dest, trip.StartDate, trip.EndDate)},
			{Label: "Airbnb", URL: Airbnb(dest)},
			{Label: "Agoda", URL: Agoda(dest)},
			{Label: "TripAdvisor", URL: TripAdvisor(dest)},
		},
		Days: make([]domain.DayLinks, 0, len(trip.Days)),
	}

	for _, d := range trip.Days {
		dl := domain.DayLinks{Day: d.Day, Directions: []domain.Link{}}
		if d.Hotel != nil {
			dl.HotelBooking = &domain.Link{
				Label: "Booking.com",
				URL:   BookingHotel(d.Hotel.Name, d.Date, d.Date.AddDate(0, 0, 1)),
			}
		}
		for i := 1; i < len(d.Activities); i++ {
			from := d.Activities[i-1].Attraction.Name
			to := d.Activities[i].Attraction.Name
			dl.Directions = append(dl.Directions, domain.Link{
				Label: from + " → " + to,
				URL:   Directions(from, to),
			})
		}
		out.Days = append(out.Days, dl)
	}
	return out
}
