package matching

import (
	"testing"

	"eventify/models"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeWithBudget(t *testing.T) {
	analyzer := NewDefaultBudgetAnalyzer()

	analysis := analyzer.Analyze(models.Demand{EventType: "wedding", Budget: 200000})

	assert.Equal(t, float64(200000), analysis.UserBudget)
	assert.InDelta(t, 240000, analysis.IndustryAverage, 0.001)
	assert.Equal(t, models.FeasibilityGood, analysis.Feasibility)
	assert.Equal(t, float64(200000), analysis.RecommendedBudget)
}

func TestAnalyzeWithoutBudget(t *testing.T) {
	analyzer := NewDefaultBudgetAnalyzer()

	for _, budget := range []float64{0, -100} {
		analysis := analyzer.Analyze(models.Demand{EventType: "party", Budget: budget})

		assert.Equal(t, models.FeasibilityUnknown, analysis.Feasibility)
		assert.Zero(t, analysis.UserBudget)
		assert.Zero(t, analysis.IndustryAverage)
		assert.Zero(t, analysis.RecommendedBudget)
	}
}
