package extraction

import (
	"context"

	"eventify/models"
)

// Extractor turns free text into a structured Demand.
type Extractor interface {
	// Name identifies the extractor in responses and logs.
	Name() string
	// Available reports whether the extractor can currently serve requests.
	Available() bool
	// Extract parses the text. The rule-based implementation never errors;
	// the AI implementation returns models.UpstreamUnavailableError on any
	// failure.
	Extract(ctx context.Context, text string) (models.Demand, error)
}

// ExtractionService selects an extractor by an explicit availability check
// and guarantees a best-effort Demand for every input.
type ExtractionService interface {
	// Extract returns the demand and the name of the extractor that served
	// it. Never fails: any upstream failure is absorbed by the rule-based
	// fallback.
	Extract(ctx context.Context, text string) (models.Demand, string)
}
