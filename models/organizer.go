package models

// PriceRange is an inclusive price band in the platform currency.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// OrganizerProfile is a supply-side organizer from the catalog. Read-only to
// the matching and negotiation engine.
type OrganizerProfile struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Expertise  []string   `bson:"expertise" json:"expertise"` // event types this organizer handles
	Location   string     `bson:"location" json:"location"`
	Rating     float64    `bson:"rating" json:"rating"` // 0–5
	PriceRange PriceRange `bson:"price_range" json:"priceRange"`
}

// MatchResult is one ranked entry of a matching call; produced fresh per
// call, never persisted. OrganizerName and Expertise are carried so the
// synthesized fallback entry is self-describing.
type MatchResult struct {
	OrganizerID     string     `json:"organizerId"`
	OrganizerName   string     `json:"organizerName"`
	Expertise       []string   `json:"expertise"`
	MatchPercentage float64    `json:"matchPercentage"` // 0–100
	PriceRange      PriceRange `json:"priceRange"`
}
