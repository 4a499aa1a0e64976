package models

// Demand is the structured form of a user's event request, produced by the
// extraction service (or synthesized from query parameters). Immutable once
// built.
type Demand struct {
	EventType   string   `json:"eventType"`          // e.g. "wedding", "birthday"; "general" when unrecognized
	Locations   []string `json:"locations"`          // ordered place names, lowercase; may be empty
	Budget      float64  `json:"budget"`             // 0 when unknown
	Guests      int      `json:"guests"`             // 0 when unknown
	Date        string   `json:"date,omitempty"`     // "YYYY-MM-DD" when mentioned
	Description string   `json:"description"`        // raw input text, preserved verbatim
}

// BudgetAnalysis is derived from a Demand; never persisted.
type BudgetAnalysis struct {
	UserBudget        float64 `json:"userBudget"`
	IndustryAverage   float64 `json:"industryAverage"`
	Feasibility       string  `json:"feasibility"` // FeasibilityUnknown or FeasibilityGood
	RecommendedBudget float64 `json:"recommendedBudget"`
}

const (
	FeasibilityUnknown = "unknown"
	FeasibilityGood    = "good"
)
