package matching

import "eventify/models"

// MatchingService ranks organizer profiles against extracted demand.
type MatchingService interface {
	// Match scores every candidate and returns results sorted descending by
	// match percentage (rating breaks ties). An empty candidate set yields a
	// single synthesized fallback entry, never an empty list.
	Match(demand models.Demand, organizers []models.OrganizerProfile) []models.MatchResult
}

// BudgetAnalyzer derives budget feasibility figures from demand.
type BudgetAnalyzer interface {
	Analyze(demand models.Demand) models.BudgetAnalysis
}
