package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// createItineraryRequest is the questionnaire submitted to POST /itineraries.
type createItineraryRequest struct {
	Destination  string              `json:"destination"`
	Days         int                 `json:"days"`
	Budget       string              `json:"budget"`
	TravelStyles []string            `json:"travel_styles"`
	Travelers    int                 `json:"travelers"`
	StartDate    *openapi_types.Date `json:"start_date"`
}

type itinerarySummary struct {
	ID          uuid.UUID          `json:"id"`
	Destination string             `json:"destination"`
	Duration    int                `json:"duration"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalCost   int                `json:"total_cost"`
	CreatedAt   time.Time          `json:"created_at"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type itineraryList struct {
	Data       []itinerarySummary `json:"data"`
	Pagination pagination         `json:"pagination"`
}

// CreateItinerary handles POST /itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var body createItineraryRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.itineraries.Create(r.Context(), requestToPreferences(body))
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}

	w.Header().Set("Location", "/itineraries/"+created.ID.String())
	writeJSON(w, http.StatusCreated, created)
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.itineraries.ListPaged(r.Context(), params)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}

	data := make([]itinerarySummary, len(trips))
	for i, t := range trips {
		data[i] = tripToSummary(t)
	}
	writeJSON(w, http.StatusOK, itineraryList{
		Data:       data,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := s.itineraries.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.itineraries.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetLinks handles GET /itineraries/{id}/links.
func (s *Server) GetLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := s.itineraries.Links(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// --- mapping helpers --------------------------------------------------------

// requestToPreferences converts the request body into domain preferences.
// Defaults and validation are applied by the service.
func requestToPreferences(body createItineraryRequest) domain.TravelPreferences {
	p := domain.TravelPreferences{
		Destination:  body.Destination,
		Days:         body.Days,
		Budget:       body.Budget,
		TravelStyles: body.TravelStyles,
		Travelers:    body.Travelers,
	}
	if body.StartDate != nil {
		sd := body.StartDate.Time
		p.StartDate = &sd
	}
	return p
}

func tripToSummary(t domain.TripItinerary) itinerarySummary {
	return itinerarySummary{
		ID:          t.ID,
		Destination: t.Destination,
		Duration:    t.Duration,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		TotalCost:   t.TotalCost,
		CreatedAt:   t.CreatedAt,
	}
}
