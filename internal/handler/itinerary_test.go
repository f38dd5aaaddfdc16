package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/handler"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
// Set only the method fields your test needs.
type mockItineraryServicer struct {
	create            func(ctx context.Context, p domain.TravelPreferences) (domain.TripItinerary, error)
	getByID           func(ctx context.Context, id uuid.UUID) (domain.TripItinerary, error)
	listPaged         func(ctx context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error)
	delete            func(ctx context.Context, id uuid.UUID) error
	addAttractions    func(ctx context.Context, id uuid.UUID, day int, as []domain.Attraction) (domain.TripItinerary, error)
	replaceAttraction func(ctx context.Context, id uuid.UUID, day, index int, a domain.Attraction) (domain.TripItinerary, error)
	removeActivity    func(ctx context.Context, id uuid.UUID, day, index int) (domain.TripItinerary, error)
	removeAttraction  func(ctx context.Context, id uuid.UUID, day int, attractionID string) (domain.TripItinerary, error)
	replaceHotel      func(ctx context.Context, id uuid.UUID, day int, h domain.Hotel) (domain.TripItinerary, error)
	links             func(ctx context.Context, id uuid.UUID) (domain.ItineraryLinks, error)
}

func (m *mockItineraryServicer) Create(ctx context.Context, p domain.TravelPreferences) (domain.TripItinerary, error) {
	return m.create(ctx, p)
}
func (m *mockItineraryServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.TripItinerary, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error) {
	return m.listPaged(ctx, p)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockItineraryServicer) AddAttractions(ctx context.Context, id uuid.UUID, day int, as []domain.Attraction) (domain.TripItinerary, error) {
	return m.addAttractions(ctx, id, day, as)
}
func (m *mockItineraryServicer) ReplaceAttraction(ctx context.Context, id uuid.UUID, day, index int, a domain.Attraction) (domain.TripItinerary, error) {
	return m.replaceAttraction(ctx, id, day, index, a)
}
func (m *mockItineraryServicer) RemoveActivity(ctx context.Context, id uuid.UUID, day, index int) (domain.TripItinerary, error) {
	return m.removeActivity(ctx, id, day, index)
}
func (m *mockItineraryServicer) RemoveAttraction(ctx context.Context, id uuid.UUID, day int, attractionID string) (domain.TripItinerary, error) {
	return m.removeAttraction(ctx, id, day, attractionID)
}
func (m *mockItineraryServicer) ReplaceHotel(ctx context.Context, id uuid.UUID, day int, h domain.Hotel) (domain.TripItinerary, error) {
	return m.replaceHotel(ctx, id, day, h)
}
func (m *mockItineraryServicer) Links(ctx context.Context, id uuid.UUID) (domain.ItineraryLinks, error) {
	return m.links(ctx, id)
}

// compile-time check: mockItineraryServicer must satisfy handler.ItineraryServicer.
var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// errorEnvelope mirrors the JSON error body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newHTTPHandler(svc handler.ItineraryServicer) http.Handler {
	return handler.NewServer(svc, nil, nil, nil).Routes(nil)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func serve(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func tripFixture() domain.TripItinerary {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return domain.TripItinerary{
		ID:          uuid.New(),
		Destination: "Paris",
		Duration:    2,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Days: []domain.DayItinerary{
			{Day: 1, Date: start, Title: "City Exploration & Landmarks", Activities: []domain.Activity{
				{Time: "9:00 AM", Attraction: domain.Attraction{ID: "paris-1", Name: "Eiffel Tower"}, Transport: "Airport Transfer", TransportCost: 30},
			}, TotalCost: 400},
			{Day: 2, Date: start.AddDate(0, 0, 1), Title: "Cultural Heritage Tour", Activities: []domain.Activity{}, TotalCost: 450},
		},
		TotalCost: 800,
		CreatedAt: start,
		UpdatedAt: start,
	}
}

// ---- POST /itineraries -----------------------------------------------------

func TestCreateItinerary_201(t *testing.T) {
	fixture := tripFixture()
	var got domain.TravelPreferences
	svc := &mockItineraryServicer{
		create: func(_ context.Context, p domain.TravelPreferences) (domain.TripItinerary, error) {
			got = p
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"destination":   "Paris, France",
		"days":          2,
		"budget":        "comfort",
		"travel_styles": []string{"cultural"},
		"travelers":     3,
		"start_date":    "2025-06-01",
	})
	rec := serve(newHTTPHandler(svc), http.MethodPost, "/itineraries", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/itineraries/"+fixture.ID.String(), rec.Header().Get("Location"))

	var resp domain.TripItinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Len(t, resp.Days, 2)

	assert.Equal(t, "Paris, France", got.Destination)
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, "comfort", got.Budget)
	assert.Equal(t, []string{"cultural"}, got.TravelStyles)
	assert.Equal(t, 3, got.Travelers)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2025-06-01", got.StartDate.Format("2006-01-02"))
}

func TestCreateItinerary_422_ValidationError(t *testing.T) {
	svc := &mockItineraryServicer{
		create: func(_ context.Context, _ domain.TravelPreferences) (domain.TripItinerary, error) {
			return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.Create: %w: destination is required", domain.ErrValidation)
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodPost, "/itineraries", jsonBody(t, map[string]any{"days": 2}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Equal(t, "destination is required", env.Error.Message)
}

func TestCreateItinerary_422_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"not json", "{"},
		{"unknown field", `{"destination":"Paris","nights":3}`},
		{"bad date", `{"destination":"Paris","start_date":"June 1st"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockItineraryServicer{}
			rec := serve(newHTTPHandler(svc), http.MethodPost, "/itineraries", bytes.NewBufferString(tc.body))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
		})
	}
}

func TestCreateItinerary_413_BodyTooLarge(t *testing.T) {
	svc := &mockItineraryServicer{}
	req := httptest.NewRequest(http.MethodPost, "/itineraries", bytes.NewBufferString(`{"destination":"a long destination name"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 8)

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", decodeError(t, rec).Error.Code)
}

func TestCreateItinerary_500_LogsAndHidesError(t *testing.T) {
	svc := &mockItineraryServicer{
		create: func(_ context.Context, _ domain.TravelPreferences) (domain.TripItinerary, error) {
			return domain.TripItinerary{}, fmt.Errorf("repo exploded")
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodPost, "/itineraries", jsonBody(t, map[string]any{"destination": "Paris"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "internal_error", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "exploded")
}

// ---- GET /itineraries ------------------------------------------------------

func TestListItineraries_200(t *testing.T) {
	trips := []domain.TripItinerary{tripFixture(), tripFixture()}
	var gotParams domain.PaginationParams
	svc := &mockItineraryServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error) {
			gotParams = p
			return trips, 7, nil
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/itineraries?page=2&limit=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, gotParams)

	var resp struct {
		Data []struct {
			ID        uuid.UUID `json:"id"`
			StartDate string    `json:"start_date"`
			EndDate   string    `json:"end_date"`
		} `json:"data"`
		Pagination struct {
			Page, Limit, Total int
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, trips[0].ID, resp.Data[0].ID)
	assert.Equal(t, "2025-06-01", resp.Data[0].StartDate)
	assert.Equal(t, "2025-06-03", resp.Data[0].EndDate)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 7, resp.Pagination.Total)
}

func TestListItineraries_200_Empty(t *testing.T) {
	svc := &mockItineraryServicer{
		listPaged: func(_ context.Context, _ domain.PaginationParams) ([]domain.TripItinerary, int, error) {
			return []domain.TripItinerary{}, 0, nil
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/itineraries", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListItineraries_422_BadPage(t *testing.T) {
	rec := serve(newHTTPHandler(&mockItineraryServicer{}), http.MethodGet, "/itineraries?page=first", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /itineraries/{id} -------------------------------------------------

func TestGetItinerary_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockItineraryServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.TripItinerary, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/itineraries/"+fixture.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp domain.TripItinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "Eiffel Tower", resp.Days[0].Activities[0].Attraction.Name)
}

func TestGetItinerary_404(t *testing.T) {
	svc := &mockItineraryServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.TripItinerary, error) {
			return domain.TripItinerary{}, fmt.Errorf("service.ItineraryService.GetByID: repo.ItineraryRepo.GetByID: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/itineraries/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "not_found", env.Error.Code)
	assert.Equal(t, "itinerary not found", env.Error.Message)
}

func TestGetItinerary_422_BadID(t *testing.T) {
	rec := serve(newHTTPHandler(&mockItineraryServicer{}), http.MethodGet, "/itineraries/not-a-uuid", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "id must be a UUID", decodeError(t, rec).Error.Message)
}

// ---- DELETE /itineraries/{id} ----------------------------------------------

func TestDeleteItinerary_204(t *testing.T) {
	svc := &mockItineraryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	rec := serve(newHTTPHandler(svc), http.MethodDelete, "/itineraries/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteItinerary_404(t *testing.T) {
	svc := &mockItineraryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodDelete, "/itineraries/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /itineraries/{id}/links -------------------------------------------

func TestGetLinks_200(t *testing.T) {
	svc := &mockItineraryServicer{
		links: func(_ context.Context, _ uuid.UUID) (domain.ItineraryLinks, error) {
			return domain.ItineraryLinks{
				MapSearch: domain.Link{Label: "Map", URL: "https://www.google.com/maps/search/?api=1&query=Paris"},
				Days:      []domain.DayLinks{{Day: 1, Directions: []domain.Link{}}},
			}, nil
		},
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/itineraries/"+uuid.NewString()+"/links", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp domain.ItineraryLinks
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.MapSearch.URL, "query=Paris")
	require.Len(t, resp.Days, 1)
}

// ---- routing ---------------------------------------------------------------

func TestUnknownRoute_404Envelope(t *testing.T) {
	rec := serve(newHTTPHandler(&mockItineraryServicer{}), http.MethodGet, "/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}
