package domain

// TransportKind groups transport options for filtering.
type TransportKind string

const (
	TransportTaxi      TransportKind = "taxi"
	TransportPublic    TransportKind = "public"
	TransportRental    TransportKind = "rental"
	TransportRideshare TransportKind = "rideshare"
)

// TransportOption is a way to get between two places. BookingURL is empty
// when the option can only be booked locally.
type TransportOption struct {
	ID             string        `json:"id"`
	Kind           TransportKind `json:"kind"`
	Provider       string        `json:"provider"`
	EstimatedPrice string        `json:"estimated_price"`
	Duration       string        `json:"duration"`
	Description    string        `json:"description"`
	BookingURL     string        `json:"booking_url,omitempty"`
}

// TransportPlan is the transport catalog for a leg, with map links when both
// ends of the leg are known.
type TransportPlan struct {
	Options    []TransportOption `json:"options"`
	Directions *Link             `json:"directions,omitempty"`
	Transit    *Link             `json:"transit,omitempty"`
}
