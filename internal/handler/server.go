// Package handler implements the HTTP handlers for the Itinerary Planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, itinerary.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/apierror"
	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching the service layer.
type ItineraryServicer interface {
	Create(ctx context.Context, prefs domain.TravelPreferences) (domain.TripItinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripItinerary, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TripItinerary, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddAttractions(ctx context.Context, id uuid.UUID, day int, attractions []domain.Attraction) (domain.TripItinerary, error)
	ReplaceAttraction(ctx context.Context, id uuid.UUID, day, index int, a domain.Attraction) (domain.TripItinerary, error)
	RemoveActivity(ctx context.Context, id uuid.UUID, day, index int) (domain.TripItinerary, error)
	RemoveAttraction(ctx context.Context, id uuid.UUID, day int, attractionID string) (domain.TripItinerary, error)
	ReplaceHotel(ctx context.Context, id uuid.UUID, day int, h domain.Hotel) (domain.TripItinerary, error)
	Links(ctx context.Context, id uuid.UUID) (domain.ItineraryLinks, error)
}

// ExportServicer defines the export operations.
type ExportServicer interface {
	Rows(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error)
	CSV(ctx context.Context, id uuid.UUID) (filename string, rows []domain.ExportRow, err error)
	PDF(ctx context.Context, id uuid.UUID) (filename string, doc []byte, err error)
	Start(ctx context.Context, id uuid.UUID) (domain.ExportJob, error)
	Job(ctx context.Context, jobID uuid.UUID) (domain.ExportJob, error)
	Document(ctx context.Context, jobID uuid.UUID) (domain.ExportJob, error)
}

// CatalogServicer defines the read-only catalog lookups.
type CatalogServicer interface {
	Options() domain.QuestionnaireOptions
	Attractions(destination string, q catalog.AttractionQuery) ([]domain.Attraction, error)
	Categories(destination string) ([]string, error)
	Hotels(destination string, f catalog.HotelFilter) ([]domain.Hotel, error)
	Transport(kind, from, to string) (domain.TransportPlan, error)
}

// Server holds the dependencies shared by every handler.
// Wire it in main.go via NewServer(...).Routes(...).
type Server struct {
	itineraries ItineraryServicer
	exports     ExportServicer
	catalog     CatalogServicer
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// Pass nil for any service that is not needed (e.g. in focused tests).
// A nil logger discards output.
func NewServer(itineraries ItineraryServicer, exports ExportServicer, cat CatalogServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{itineraries: itineraries, exports: exports, catalog: cat, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns the API router. exportLimit, when non-nil, wraps the
// routes that render documents.
func (s *Server) Routes(exportLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody(apierror.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody(apierror.CodeValidation, "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/options", s.GetOptions)

	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/", s.CreateItinerary)
		r.Get("/", s.ListItineraries)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetItinerary)
			r.Delete("/", s.DeleteItinerary)
			r.Get("/links", s.GetLinks)
			r.Route("/days/{day}", func(r chi.Router) {
				r.Post("/activities", s.AddActivities)
				r.Put("/activities/{index}", s.ReplaceActivity)
				r.Delete("/activities/{index}", s.RemoveActivity)
				r.Delete("/attractions/{attractionID}", s.RemoveAttraction)
				r.Put("/hotel", s.ReplaceHotel)
			})
			r.Group(func(r chi.Router) {
				if exportLimit != nil {
					r.Use(exportLimit)
				}
				r.Get("/export", s.GetExport)
				r.Post("/exports", s.StartExport)
			})
		})
	})

	r.Get("/exports/{jobID}", s.GetExportJob)
	r.Get("/exports/{jobID}/document", s.GetExportDocument)

	r.Route("/destinations/{destination}", func(r chi.Router) {
		r.Get("/attractions", s.ListAttractions)
		r.Get("/categories", s.ListCategories)
		r.Get("/hotels", s.ListHotels)
	})
	r.Get("/transport", s.GetTransport)

	return r
}
