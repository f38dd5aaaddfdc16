package export

import "github.com/pkordes/itinerary-planner/backend/internal/domain"

// RowDateLayout is the format of ExportRow.Date.
const RowDateLayout = "2006-01-02"

// Rows flattens trip into one row per activity, in day then activity order.
// A day without activities contributes a single row with empty activity
// fields so that every day appears in the export.
func Rows(trip domain.TripItinerary) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(trip.Days)*3)
	for _, d := range trip.Days {
		base := domain.ExportRow{
			Day:      d.Day,
			Date:     d.Date.Format(RowDateLayout),
			DayTitle: d.Title,
			DayCost:  d.TotalCost,
		}
		if d.Hotel != nil {
			base.HotelName = d.Hotel.Name
		}

		if len(d.Activities) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, a := range d.Activities {
			row := base
			row.Time = a.Time
			row.AttractionID = a.Attraction.ID
			row.AttractionName = a.Attraction.Name
			row.Category = a.Attraction.Category
			row.Duration = a.Attraction.Duration
			row.Price = a.Attraction.Price
			row.Transport = a.Transport
			row.TransportCost = a.TransportCost
			rows = append(rows, row)
		}
	}
	return rows
}

// CSVFilename is Filename with a .csv extension.
func CSVFilename(destination string) string {
	return whitespaceRun.ReplaceAllString(destination, "_") + "_itinerary.csv"
}
