package catalog

import (
	"slices"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// DefaultBudget is assumed when the questionnaire leaves the budget blank.
const DefaultBudget = "moderate"

var travelStyles = []domain.Option{
	{ID: "adventure", Label: "Adventure"},
	{ID: "cultural", Label: "Cultural"},
	{ID: "beach", Label: "Beach & Relaxation"},
	{ID: "food", Label: "Food & Culinary"},
	{ID: "family", Label: "Family Friendly"},
	{ID: "luxury", Label: "Luxury"},
	{ID: "budget", Label: "Budget Travel"},
	{ID: "nightlife", Label: "Nightlife"},
	{ID: "nature", Label: "Nature & Wildlife"},
	{ID: "shopping", Label: "Shopping"},
}

var budgetRanges = []domain.BudgetRange{
	{ID: "budget", Label: "Budget", Range: "$0 - $500"},
	{ID: "moderate", Label: "Moderate", Range: "$500 - $1500"},
	{ID: "comfort", Label: "Comfort", Range: "$1500 - $3000"},
	{ID: "luxury", Label: "Luxury", Range: "$3000+"},
}

// TravelStyles returns the selectable travel styles.
func TravelStyles() []domain.Option { return slices.Clone(travelStyles) }

// BudgetRanges returns the selectable budget bands.
func BudgetRanges() []domain.BudgetRange { return slices.Clone(budgetRanges) }

// IsTravelStyle reports whether id names a travel style.
func IsTravelStyle(id string) bool {
	return slices.ContainsFunc(travelStyles, func(o domain.Option) bool { return o.ID == id })
}

// IsBudget reports whether id names a budget band.
func IsBudget(id string) bool {
	return slices.ContainsFunc(budgetRanges, func(b domain.BudgetRange) bool { return b.ID == id })
}
