package catalog

import "github.com/pkordes/itinerary-planner/backend/internal/domain"

// Transport filters accepted by TransportOptions.
const (
	TransportAll    = "all"
	TransportTaxi   = "taxi"
	TransportPublic = "public"
	TransportRental = "rental"
)

var transportOptions = []domain.TransportOption{
	{ID: "1", Kind: domain.TransportTaxi, Provider: "Uber", EstimatedPrice: "$15-25", Duration: "20-30 min",
		Description: "Door-to-door service, most convenient", BookingURL: "https://m.uber.com"},
	{ID: "2", Kind: domain.TransportTaxi, Provider: "Local Taxi", EstimatedPrice: "$12-20", Duration: "20-30 min",
		Description: "Traditional taxi service"},
	{ID: "3", Kind: domain.TransportPublic, Provider: "Metro/Subway", EstimatedPrice: "$2-5", Duration: "35-45 min",
		Description: "Economical option, may require transfers"},
	{ID: "4", Kind: domain.TransportPublic, Provider: "Bus", EstimatedPrice: "$1-3", Duration: "45-60 min",
		Description: "Most affordable, scenic route"},
	{ID: "5", Kind: domain.TransportRental, Provider: "Car Rental", EstimatedPrice: "$40-80/day", Duration: "20-30 min",
		Description: "Freedom to explore at your own pace", BookingURL: "https://www.enterprise.com"},
	{ID: "6", Kind: domain.TransportRideshare, Provider: "Lyft", EstimatedPrice: "$14-24", Duration: "20-30 min",
		Description: "Rideshare alternative", BookingURL: "https://www.lyft.com"},
}

// TransportOptions returns the options matching filter. "taxi" includes
// rideshare providers; "" is treated as "all". ok is false for an
// unrecognised filter.
func (c *Catalog) TransportOptions(filter string) (opts []domain.TransportOption, ok bool) {
	var keep func(domain.TransportKind) bool
	switch filter {
	case "", TransportAll:
		keep = func(domain.TransportKind) bool { return true }
	case TransportTaxi:
		keep = func(k domain.TransportKind) bool { return k == domain.TransportTaxi || k == domain.TransportRideshare }
	case TransportPublic:
		keep = func(k domain.TransportKind) bool { return k == domain.TransportPublic }
	case TransportRental:
		keep = func(k domain.TransportKind) bool { return k == domain.TransportRental }
	default:
		return nil, false
	}

	opts = []domain.TransportOption{}
	for _, o := range c.transport {
		if keep(o.Kind) {
			opts = append(opts, o)
		}
	}
	return opts, true
}
