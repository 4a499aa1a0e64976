package extraction

import (
	"context"
	"testing"

	"eventify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleBasedExtract(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantEventType string
		wantLocations []string
		wantBudget    float64
	}{
		{
			name:          "wedding with city and budget",
			text:          "Planning a wedding in Kathmandu for around 500000",
			wantEventType: "wedding",
			wantLocations: []string{"kathmandu"},
			wantBudget:    500000,
		},
		{
			name:          "keyword priority prefers wedding over party",
			text:          "a party after the wedding",
			wantEventType: "wedding",
			wantLocations: []string{"unknown"},
			wantBudget:    0,
		},
		{
			name:          "multiple cities collected in gazetteer order",
			text:          "corporate retreat, either Pokhara or Chitwan",
			wantEventType: "corporate",
			wantLocations: []string{"pokhara", "chitwan"},
			wantBudget:    0,
		},
		{
			name:          "no signal degrades to general and unknown",
			text:          "need help with something next month",
			wantEventType: "general",
			wantLocations: []string{"unknown"},
			wantBudget:    0,
		},
		{
			name:          "short digit runs are not budgets",
			text:          "birthday for 120 guests",
			wantEventType: "birthday",
			wantLocations: []string{"unknown"},
			wantBudget:    0,
		},
		{
			name:          "first long digit run wins",
			text:          "conference, budget 80000 up to 120000",
			wantEventType: "conference",
			wantLocations: []string{"unknown"},
			wantBudget:    80000,
		},
		{
			name:          "case-insensitive matching",
			text:          "BIRTHDAY in POKHARA, 45000",
			wantEventType: "birthday",
			wantLocations: []string{"pokhara"},
			wantBudget:    45000,
		},
	}

	extractor := NewRuleBasedExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demand, err := extractor.Extract(context.Background(), tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.wantEventType, demand.EventType)
			assert.Equal(t, tt.wantLocations, demand.Locations)
			assert.Equal(t, tt.wantBudget, demand.Budget)
			assert.Equal(t, tt.text, demand.Description)
		})
	}
}

func TestRuleBasedExtractorAlwaysAvailable(t *testing.T) {
	extractor := NewRuleBasedExtractor()
	assert.True(t, extractor.Available())
	assert.Equal(t, "rules", extractor.Name())
}

func TestParseDemandJSONClampsAndNormalizes(t *testing.T) {
	demand, err := parseDemandJSON("```json\n{\"eventType\":\"Wedding\",\"locations\":[\"Kathmandu\"],\"budget\":-5,\"guests\":100}\n```")
	require.NoError(t, err)

	assert.Equal(t, "wedding", demand.EventType)
	assert.Equal(t, []string{"kathmandu"}, demand.Locations)
	assert.Equal(t, float64(0), demand.Budget)
	assert.Equal(t, 100, demand.Guests)
}

func TestParseDemandJSONRejectsGarbage(t *testing.T) {
	_, err := parseDemandJSON("not json at all")
	assert.Error(t, err)
}

// stub extractors for the routing tests.

type stubExtractor struct {
	name      string
	available bool
	demand    models.Demand
	err       error
}

func (s *stubExtractor) Name() string        { return s.name }
func (s *stubExtractor) Available() bool     { return s.available }
func (s *stubExtractor) Extract(ctx context.Context, text string) (models.Demand, error) {
	return s.demand, s.err
}

func TestExtractionServiceRouting(t *testing.T) {
	fallback := NewRuleBasedExtractor()

	t.Run("uses primary when available", func(t *testing.T) {
		primary := &stubExtractor{
			name:      "gemini",
			available: true,
			demand:    models.Demand{EventType: "wedding", Locations: []string{"pokhara"}, Budget: 300000},
		}
		svc := NewDefaultExtractionService(primary, fallback, nil)

		demand, served := svc.Extract(context.Background(), "anything")
		assert.Equal(t, "gemini", served)
		assert.Equal(t, "wedding", demand.EventType)
	})

	t.Run("falls back when primary unavailable", func(t *testing.T) {
		primary := &stubExtractor{name: "gemini", available: false}
		svc := NewDefaultExtractionService(primary, fallback, nil)

		demand, served := svc.Extract(context.Background(), "birthday in Dharan 50000")
		assert.Equal(t, "rules", served)
		assert.Equal(t, "birthday", demand.EventType)
		assert.Equal(t, []string{"dharan"}, demand.Locations)
	})

	t.Run("absorbs primary failure", func(t *testing.T) {
		primary := &stubExtractor{
			name:      "gemini",
			available: true,
			err:       models.UpstreamUnavailableError{Service: "gemini"},
		}
		svc := NewDefaultExtractionService(primary, fallback, nil)

		demand, served := svc.Extract(context.Background(), "corporate event in Butwal")
		assert.Equal(t, "rules", served)
		assert.Equal(t, "corporate", demand.EventType)
		assert.Equal(t, []string{"butwal"}, demand.Locations)
	})

	t.Run("nil primary goes straight to fallback", func(t *testing.T) {
		svc := NewDefaultExtractionService(nil, fallback, nil)

		_, served := svc.Extract(context.Background(), "anything")
		assert.Equal(t, "rules", served)
	})
}
