package matching

import (
	"sort"
	"strings"

	"eventify/models"
)

// Scoring weights. The three contributions sum to at most 100.
const (
	MaxExpertisePoints = 50.0
	GeneralistPoints   = 25.0
	LocationPoints     = 30.0
	MaxBudgetPoints    = 20.0
	NeutralBudgetPts   = 10.0
)

// Default suggested price band when the user gave no budget.
const (
	DefaultPriceMin = 50000.0
	DefaultPriceMax = 500000.0
)

// DefaultMatchingService implements MatchingService.
type DefaultMatchingService struct{}

// NewDefaultMatchingService creates the matcher.
func NewDefaultMatchingService() *DefaultMatchingService {
	return &DefaultMatchingService{}
}

// Match scores, ranks and never drops organizers: incompatible ones rank low
// instead of disappearing, and an empty candidate set degrades to a single
// synthesized specialist entry so callers always get actionable output.
func (s *DefaultMatchingService) Match(demand models.Demand, organizers []models.OrganizerProfile) []models.MatchResult {
	if len(organizers) == 0 {
		return []models.MatchResult{fallbackMatch(demand)}
	}

	type scored struct {
		organizer models.OrganizerProfile
		score     float64
	}

	scores := make([]scored, 0, len(organizers))
	for _, o := range organizers {
		total := expertiseScore(o.Expertise, demand.EventType) +
			locationScore(o.Location, demand.Locations) +
			budgetFitScore(demand.Budget, o.PriceRange)
		if total > 100 {
			total = 100
		}
		scores = append(scores, scored{organizer: o, score: total})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].organizer.Rating > scores[j].organizer.Rating
	})

	results := make([]models.MatchResult, 0, len(scores))
	for _, sc := range scores {
		results = append(results, models.MatchResult{
			OrganizerID:     sc.organizer.ID,
			OrganizerName:   sc.organizer.Name,
			Expertise:       sc.organizer.Expertise,
			MatchPercentage: sc.score,
			PriceRange:      suggestedPriceRange(demand.Budget),
		})
	}
	return results
}

func expertiseScore(expertise []string, eventType string) float64 {
	hasGeneral := false
	for _, e := range expertise {
		if strings.EqualFold(e, eventType) {
			return MaxExpertisePoints
		}
		if strings.EqualFold(e, "general") {
			hasGeneral = true
		}
	}
	if hasGeneral {
		return GeneralistPoints
	}
	return 0
}

func locationScore(location string, demandLocations []string) float64 {
	for _, l := range demandLocations {
		if strings.EqualFold(location, l) {
			return LocationPoints
		}
	}
	return 0
}

// budgetFitScore is full inside the organizer's band and decays
// proportionally outside it; it never goes negative and a neutral score
// applies when the budget is unknown.
func budgetFitScore(budget float64, priceRange models.PriceRange) float64 {
	if budget <= 0 {
		return NeutralBudgetPts
	}
	switch {
	case priceRange.Min > 0 && budget < priceRange.Min:
		return MaxBudgetPoints * (budget / priceRange.Min)
	case priceRange.Max > 0 && budget > priceRange.Max:
		return MaxBudgetPoints * (priceRange.Max / budget)
	default:
		return MaxBudgetPoints
	}
}

func suggestedPriceRange(budget float64) models.PriceRange {
	if budget > 0 {
		return models.PriceRange{Min: 0.7 * budget, Max: 1.3 * budget}
	}
	return models.PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
}

// fallbackMatch mirrors the no-catalog degraded mode: a single generic
// specialist entry for the requested event type.
func fallbackMatch(demand models.Demand) models.MatchResult {
	eventType := demand.EventType
	if eventType == "" {
		eventType = "general"
	}
	title := strings.ToUpper(eventType[:1]) + eventType[1:]
	return models.MatchResult{
		OrganizerID:     "fallback-" + eventType,
		OrganizerName:   title + " Specialists",
		Expertise:       []string{eventType},
		MatchPercentage: 75,
		PriceRange:      suggestedPriceRange(demand.Budget),
	}
}
