package handler

import (
	"net/http"

	"github.com/pkordes/itinerary-planner/backend/internal/catalog"
)

// GetOptions handles GET /options.
func (s *Server) GetOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Options())
}

// ListAttractions handles GET /destinations/{destination}/attractions.
// ?exclude= takes a comma-separated list of attraction IDs.
func (s *Server) ListAttractions(w http.ResponseWriter, r *http.Request) {
	q := catalog.AttractionQuery{
		Query:      r.URL.Query().Get("q"),
		Category:   r.URL.Query().Get("category"),
		ExcludeIDs: queryList(r, "exclude"),
	}
	out, err := s.catalog.Attractions(pathString(r, "destination"), q)
	if err != nil {
		s.fail(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ListCategories handles GET /destinations/{destination}/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	out, err := s.catalog.Categories(pathString(r, "destination"))
	if err != nil {
		s.fail(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ListHotels handles GET /destinations/{destination}/hotels.
func (s *Server) ListHotels(w http.ResponseWriter, r *http.Request) {
	minPrice, ok := queryInt(w, r, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := queryInt(w, r, "max_price")
	if !ok {
		return
	}

	f := catalog.HotelFilter{MinPrice: minPrice, MaxPrice: maxPrice, Band: r.URL.Query().Get("type")}
	out, err := s.catalog.Hotels(pathString(r, "destination"), f)
	if err != nil {
		s.fail(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTransport handles GET /transport.
func (s *Server) GetTransport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plan, err := s.catalog.Transport(q.Get("type"), q.Get("from"), q.Get("to"))
	if err != nil {
		s.fail(w, r, err, "transport not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
