package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// CategoryAll matches every category in category filters.
const CategoryAll = "All"

// IsCurated reports whether destination has a curated attraction pool.
func (c *Catalog) IsCurated(destination string) bool {
	_, ok := c.curated[NormalizeDestination(destination)]
	return ok
}

// CuratedDestinations returns the registry keys in alphabetical order.
func (c *Catalog) CuratedDestinations() []string {
	out := make([]string, 0, len(c.curated))
	for k := range c.curated {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ResolveAttractions returns the attraction pool for destination.
//
// Resolution is two-tier: the curated registry is consulted first using the
// normalized destination; when it has no entry the generic pool is returned
// with the destination interpolated into every name and ID. Unknown
// destinations never fail.
func (c *Catalog) ResolveAttractions(destination string) []domain.Attraction {
	if pool, ok := c.curated[NormalizeDestination(destination)]; ok {
		return slices.Clone(pool)
	}
	return c.fallbackPool(destination)
}

// fallbackPool templates the generic pool for destination.
// Names become "{destination} {name}" and IDs "{slug}-{index}".
func (c *Catalog) fallbackPool(destination string) []domain.Attraction {
	slug := Slug(destination)
	out := make([]domain.Attraction, len(c.generic))
	for i, a := range c.generic {
		a.ID = slug + "-" + strconv.Itoa(i)
		a.Name = destination + " " + a.Name
		out[i] = a
	}
	return out
}

// SuggestAttractions returns the resolved pool followed by the templated
// extras. This is the set a traveller browses when adding attractions to a day.
func (c *Catalog) SuggestAttractions(destination string) []domain.Attraction {
	out := c.ResolveAttractions(destination)
	slug := Slug(destination)
	for _, a := range c.extras {
		a.ID = slug + "-" + a.ID
		a.Name = destination + " " + a.Name
		out = append(out, a)
	}
	return out
}

// SearchAttractions returns attractions in the resolved pool whose name,
// description, or category contains query, ignoring case.
func (c *Catalog) SearchAttractions(destination, query string) []domain.Attraction {
	return filterAttractions(c.ResolveAttractions(destination), func(a domain.Attraction) bool {
		return matchesQuery(a, query, true)
	})
}

// AttractionsByCategory returns attractions in the resolved pool with the
// exact category. CategoryAll returns the whole pool.
func (c *Catalog) AttractionsByCategory(destination, category string) []domain.Attraction {
	pool := c.ResolveAttractions(destination)
	if category == CategoryAll {
		return pool
	}
	return filterAttractions(pool, func(a domain.Attraction) bool { return a.Category == category })
}

// NearbyAttractions returns the resolved pool minus the attractions whose IDs
// are in excludeIDs (typically those already scheduled).
func (c *Catalog) NearbyAttractions(destination string, excludeIDs []string) []domain.Attraction {
	return filterAttractions(c.ResolveAttractions(destination), func(a domain.Attraction) bool {
		return !slices.Contains(excludeIDs, a.ID)
	})
}

// Categories returns CategoryAll followed by the distinct categories of the
// resolved pool in first-seen order.
func (c *Catalog) Categories(destination string) []string {
	out := []string{CategoryAll}
	for _, a := range c.ResolveAttractions(destination) {
		if !slices.Contains(out, a.Category) {
			out = append(out, a.Category)
		}
	}
	return out
}

// AttractionQuery narrows the suggestion list. Zero values match everything.
type AttractionQuery struct {
	// Query is matched case-insensitively against name and description.
	Query string
	// Category is matched exactly; "" and CategoryAll match any category.
	Category string
	// ExcludeIDs drops attractions that are already scheduled.
	ExcludeIDs []string
}

// FindAttractions filters SuggestAttractions by q.
func (c *Catalog) FindAttractions(destination string, q AttractionQuery) []domain.Attraction {
	return filterAttractions(c.SuggestAttractions(destination), func(a domain.Attraction) bool {
		if q.Category != "" && q.Category != CategoryAll && a.Category != q.Category {
			return false
		}
		if slices.Contains(q.ExcludeIDs, a.ID) {
			return false
		}
		return matchesQuery(a, q.Query, false)
	})
}

func matchesQuery(a domain.Attraction, query string, withCategory bool) bool {
	term := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.Description), term) {
		return true
	}
	return withCategory && strings.Contains(strings.ToLower(a.Category), term)
}

// filterAttractions returns a non-nil slice of the attractions keep accepts.
func filterAttractions(in []domain.Attraction, keep func(domain.Attraction) bool) []domain.Attraction {
	out := []domain.Attraction{}
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
