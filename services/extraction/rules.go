package extraction

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"eventify/models"
)

// eventTypeKeywords is scanned in priority order; the first hit wins.
var eventTypeKeywords = []string{"wedding", "birthday", "corporate", "conference", "party"}

// gazetteer is the fixed set of place names the rule-based path recognizes.
var gazetteer = []string{
	"kathmandu",
	"pokhara",
	"lalitpur",
	"bhaktapur",
	"chitwan",
	"butwal",
	"biratnagar",
	"dharan",
}

var budgetPattern = regexp.MustCompile(`\d{4,}`)

// RuleBasedExtractor is the deterministic fallback path: a pure function of
// the input text plus the static keyword and gazetteer tables.
type RuleBasedExtractor struct{}

// NewRuleBasedExtractor creates the deterministic extractor.
func NewRuleBasedExtractor() *RuleBasedExtractor {
	return &RuleBasedExtractor{}
}

func (e *RuleBasedExtractor) Name() string { return "rules" }

func (e *RuleBasedExtractor) Available() bool { return true }

func (e *RuleBasedExtractor) Extract(ctx context.Context, text string) (models.Demand, error) {
	lower := strings.ToLower(text)

	eventType := "general"
	for _, keyword := range eventTypeKeywords {
		if strings.Contains(lower, keyword) {
			eventType = keyword
			break
		}
	}

	var locations []string
	for _, place := range gazetteer {
		if strings.Contains(lower, place) {
			locations = append(locations, place)
		}
	}
	if len(locations) == 0 {
		locations = []string{"unknown"}
	}

	var budget float64
	if match := budgetPattern.FindString(text); match != "" {
		if parsed, err := strconv.Atoi(match); err == nil {
			budget = float64(parsed)
		}
	}

	return models.Demand{
		EventType:   eventType,
		Locations:   locations,
		Budget:      budget,
		Description: text,
	}, nil
}
