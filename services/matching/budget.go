package matching

import "eventify/models"

// IndustryAverageFactor is the observed markup between a user's stated
// budget and the going market rate.
const IndustryAverageFactor = 1.2

// DefaultBudgetAnalyzer implements BudgetAnalyzer as a pure function.
type DefaultBudgetAnalyzer struct{}

// NewDefaultBudgetAnalyzer creates the analyzer.
func NewDefaultBudgetAnalyzer() *DefaultBudgetAnalyzer {
	return &DefaultBudgetAnalyzer{}
}

// Analyze is deliberately two-valued on feasibility: a stated budget is
// "good", an absent one "unknown".
func (a *DefaultBudgetAnalyzer) Analyze(demand models.Demand) models.BudgetAnalysis {
	if demand.Budget <= 0 {
		return models.BudgetAnalysis{Feasibility: models.FeasibilityUnknown}
	}
	return models.BudgetAnalysis{
		UserBudget:        demand.Budget,
		IndustryAverage:   demand.Budget * IndustryAverageFactor,
		Feasibility:       models.FeasibilityGood,
		RecommendedBudget: demand.Budget,
	}
}
