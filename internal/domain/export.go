package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRow is a single row in the flat itinerary export.
// It is a denormalized view: one row per activity, with day fields repeated
// for every activity on that day. Days with no activities yield one row with
// zero values for all activity fields.
type ExportRow struct {
	// Day fields, repeated for every activity on the day.
	Day       int
	Date      string // "2006-01-02" formatted date
	DayTitle  string
	HotelName string // empty string when no hotel is assigned
	DayCost   int

	// Activity fields, zero values when the day has no activities.
	Time           string
	AttractionID   string
	AttractionName string
	Category       string
	Duration       string
	Price          string
	Transport      string
	TransportCost  int
}

// ExportStatus is the lifecycle state of an asynchronous export.
type ExportStatus string

const (
	ExportPending ExportStatus = "pending"
	ExportDone    ExportStatus = "done"
	ExportFailed  ExportStatus = "failed"
)

// ExportJob tracks one asynchronous PDF export of an itinerary.
// Document is set only when Status is ExportDone; Error only when it is
// ExportFailed.
type ExportJob struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	Status      ExportStatus
	Filename    string
	Document    []byte
	Error       string
	CreatedAt   time.Time
	FinishedAt  *time.Time
}

// Clone returns a copy of the job that does not share the document buffer.
func (j ExportJob) Clone() ExportJob {
	out := j
	if j.Document != nil {
		out.Document = append([]byte(nil), j.Document...)
	}
	if j.FinishedAt != nil {
		f := *j.FinishedAt
		out.FinishedAt = &f
	}
	return out
}
