// export.go implements the synchronous export and the background PDF jobs.
// GET /itineraries/{id}/export supports ?format=json (default), csv or pdf.
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/export"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day", "date", "day_title", "hotel_name", "day_cost",
	"time", "attraction_id", "attraction_name", "category",
	"duration", "price", "transport", "transport_cost",
}

// exportRowResponse is the JSON shape of one export row.
// Fields that are empty strings are omitted.
type exportRowResponse struct {
	Day            int                `json:"day"`
	Date           openapi_types.Date `json:"date"`
	DayTitle       string             `json:"day_title"`
	HotelName      *string            `json:"hotel_name,omitempty"`
	DayCost        int                `json:"day_cost"`
	Time           *string            `json:"time,omitempty"`
	AttractionID   *string            `json:"attraction_id,omitempty"`
	AttractionName *string            `json:"attraction_name,omitempty"`
	Category       *string            `json:"category,omitempty"`
	Duration       *string            `json:"duration,omitempty"`
	Price          *string            `json:"price,omitempty"`
	Transport      *string            `json:"transport,omitempty"`
	TransportCost  int                `json:"transport_cost"`
}

type exportJobResponse struct {
	ID          uuid.UUID           `json:"id"`
	ItineraryID uuid.UUID           `json:"itinerary_id"`
	Status      domain.ExportStatus `json:"status"`
	Filename    string              `json:"filename"`
	Error       string              `json:"error,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
	DocumentURL string              `json:"document_url,omitempty"`
}

// GetExport handles GET /itineraries/{id}/export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		rows, err := s.exports.Rows(r.Context(), id)
		if err != nil {
			s.fail(w, r, err, "itinerary not found")
			return
		}
		writeJSON(w, http.StatusOK, buildJSONResponse(rows))
	case "csv":
		name, rows, err := s.exports.CSV(r.Context(), id)
		if err != nil {
			s.fail(w, r, err, "itinerary not found")
			return
		}
		buf := buildCSV(rows)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", attachment(name))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	case "pdf":
		name, doc, err := s.exports.PDF(r.Context(), id)
		if err != nil {
			s.fail(w, r, err, "itinerary not found")
			return
		}
		writePDF(w, name, doc)
	default:
		requestError(w, "format must be one of json, csv, pdf")
	}
}

// StartExport handles POST /itineraries/{id}/exports.
func (s *Server) StartExport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.exports.Start(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	w.Header().Set("Location", "/exports/"+job.ID.String())
	writeJSON(w, http.StatusAccepted, jobToResponse(job))
}

// GetExportJob handles GET /exports/{jobID}.
func (s *Server) GetExportJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobID")
	if !ok {
		return
	}

	job, err := s.exports.Job(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err, "export not found")
		return
	}
	writeJSON(w, http.StatusOK, jobToResponse(job))
}

// GetExportDocument handles GET /exports/{jobID}/document.
func (s *Server) GetExportDocument(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobID")
	if !ok {
		return
	}

	job, err := s.exports.Document(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err, "export not found")
		return
	}
	writePDF(w, job.Filename, job.Document)
}

func writePDF(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func attachment(filename string) string {
	return `attachment; filename="` + filename + `"`
}

// buildJSONResponse converts domain rows to the JSON response.
func buildJSONResponse(rows []domain.ExportRow) []exportRowResponse {
	out := make([]exportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToResponse(r))
	}
	return out
}

// buildCSV encodes domain rows as CSV, header first.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// bytes.Buffer.Write never returns an error.
	_ = w.Write(csvHeaders)
	for _, r := range rows {
		_ = w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()
	return &buf
}

// domainRowToResponse maps a domain.ExportRow to its JSON shape.
// Fields that are empty strings become nil pointers (omitempty in JSON).
func domainRowToResponse(r domain.ExportRow) exportRowResponse {
	return exportRowResponse{
		Day:            r.Day,
		Date:           mustParseDate(r.Date),
		DayTitle:       r.DayTitle,
		HotelName:      optional(r.HotelName),
		DayCost:        r.DayCost,
		Time:           optional(r.Time),
		AttractionID:   optional(r.AttractionID),
		AttractionName: optional(r.AttractionName),
		Category:       optional(r.Category),
		Duration:       optional(r.Duration),
		Price:          optional(r.Price),
		Transport:      optional(r.Transport),
		TransportCost:  r.TransportCost,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.Day),
		r.Date,
		r.DayTitle,
		r.HotelName,
		strconv.Itoa(r.DayCost),
		r.Time,
		r.AttractionID,
		r.AttractionName,
		r.Category,
		r.Duration,
		r.Price,
		r.Transport,
		strconv.Itoa(r.TransportCost),
	}
}

func jobToResponse(j domain.ExportJob) exportJobResponse {
	resp := exportJobResponse{
		ID:          j.ID,
		ItineraryID: j.ItineraryID,
		Status:      j.Status,
		Filename:    j.Filename,
		Error:       j.Error,
		CreatedAt:   j.CreatedAt,
		FinishedAt:  j.FinishedAt,
	}
	if j.Status == domain.ExportDone {
		resp.DocumentURL = "/exports/" + j.ID.String() + "/document"
	}
	return resp
}

// mustParseDate parses a "2006-01-02" string into an openapi_types.Date.
// Panics on malformed input; callers are expected to pass service-generated dates.
func mustParseDate(s string) openapi_types.Date {
	t, err := time.Parse(export.RowDateLayout, s)
	if err != nil {
		panic("handler: malformed date from service: " + s)
	}
	return openapi_types.Date{Time: t}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
