package radix

import (
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// Service handles radix conversions.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new radix service.
func NewService(log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		logger:  logger.ForFeature(log, "radix"),
		metrics: rec,
	}
}

// Convert applies an edit of the named field (hex, dec, oct, bin).
func (s *Service) Convert(field, value string) (Quadruple, error) {
	base, err := ParseBase(field)
	if err != nil {
		return Quadruple{}, err
	}

	q, ok := ConvertFrom(base, value)
	s.metrics.Observe("radix", base.String(), ok)
	if !ok {
		s.logger.Debug("Radix input rejected", zap.String("field", base.String()), zap.String("value", value))
	}
	return q, nil
}
