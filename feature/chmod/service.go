package chmod

import (
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// Service handles chmod calculator edits.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new chmod service.
func NewService(log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		logger:  logger.ForFeature(log, "chmod"),
		metrics: rec,
	}
}

// Toggle flips one bit of the grid.
func (s *Service) Toggle(state State, who, perm string) (State, error) {
	c, p, err := ParseBit(who, perm)
	if err != nil {
		return state, err
	}
	s.metrics.Observe("chmod", "toggle", true)
	return Toggle(state, c, p), nil
}

// SetOctal applies an edit of the octal field.
func (s *Service) SetOctal(state State, value string) State {
	next, ok := SetOctal(state, value)
	s.metrics.Observe("chmod", "octal", ok)
	return next
}

// SetText applies an edit of the symbolic field.
func (s *Service) SetText(state State, value string) State {
	next, ok := SetText(state, value)
	s.metrics.Observe("chmod", "text", ok)
	return next
}
