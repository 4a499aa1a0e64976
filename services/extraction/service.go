package extraction

import (
	"context"

	"eventify/models"

	"go.uber.org/zap"
)

// DefaultExtractionService implements ExtractionService by routing to the
// primary (AI) extractor when it reports itself available, and to the
// deterministic fallback otherwise. An error from an available primary is
// treated the same as unavailability: the fallback result is returned and
// the failure only logged, so extraction never surfaces an error.
type DefaultExtractionService struct {
	Primary  Extractor
	Fallback Extractor
	Logger   *zap.Logger
}

// NewDefaultExtractionService wires the two extractors.
func NewDefaultExtractionService(primary, fallback Extractor, logger *zap.Logger) *DefaultExtractionService {
	return &DefaultExtractionService{Primary: primary, Fallback: fallback, Logger: logger}
}

func (s *DefaultExtractionService) Extract(ctx context.Context, text string) (models.Demand, string) {
	if s.Primary != nil && s.Primary.Available() {
		demand, err := s.Primary.Extract(ctx, text)
		if err == nil {
			return demand, s.Primary.Name()
		}
		if s.Logger != nil {
			s.Logger.Warn("primary extractor failed, using fallback",
				zap.String("extractor", s.Primary.Name()),
				zap.Error(err))
		}
	}

	demand, _ := s.Fallback.Extract(ctx, text)
	return demand, s.Fallback.Name()
}
