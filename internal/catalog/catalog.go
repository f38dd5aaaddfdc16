// Package catalog holds the static destination data the itinerary generator
// draws from: curated attraction pools, the generic fallback pool, hotel
// archetypes, transport options, and the questionnaire option lists.
//
// Curated and generic attraction data is embedded at compile time from
// data/*.json, so the binary and its catalog are always in sync.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// genericData is the shape of data/generic.json.
type genericData struct {
	// Default is the fallback pool for destinations without curated data.
	// Names are generic ("Historic City Center") and get the destination
	// prefixed when resolved.
	Default []domain.Attraction `json:"default"`
	// Extras are additional templated suggestions offered when a traveller
	// browses for attractions to add. IDs are suffixes ("museum-1").
	Extras []domain.Attraction `json:"extras"`
}

// Catalog is a read-only view over the destination data.
// All methods return fresh slices; callers may modify them freely.
type Catalog struct {
	curated   map[string][]domain.Attraction
	generic   []domain.Attraction
	extras    []domain.Attraction
	hotels    []domain.HotelTemplate
	transport []domain.TransportOption
}

// New loads the embedded catalog data.
func New() (*Catalog, error) {
	var curated map[string][]domain.Attraction
	if err := readJSON("data/attractions.json", &curated); err != nil {
		return nil, err
	}

	var generic genericData
	if err := readJSON("data/generic.json", &generic); err != nil {
		return nil, err
	}
	if len(generic.Default) == 0 {
		return nil, fmt.Errorf("catalog.New: generic pool is empty")
	}

	return &Catalog{
		curated:   curated,
		generic:   generic.Default,
		extras:    generic.Extras,
		hotels:    hotelTemplates,
		transport: transportOptions,
	}, nil
}

func readJSON(name string, v any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog.New: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog.New: decode %s: %w", name, err)
	}
	return nil
}

// NormalizeDestination reduces a display destination to its registry key:
// the text before the first comma, trimmed. "Paris, France" → "Paris".
// Matching is case sensitive; "paris" is not normalized to "Paris".
func NormalizeDestination(destination string) string {
	name, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(name)
}

// Slug lower-cases destination and replaces every character outside [a-z0-9]
// with "-". It is used to build IDs for templated attractions.
// "New York, USA" → "new-york--usa".
func Slug(destination string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(destination) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
