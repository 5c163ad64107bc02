package timestamp

import (
	"errors"
	"fmt"

	"toolbox/core/hostenv"
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// ErrUnknownField is returned for a field other than epoch or human.
var ErrUnknownField = errors.New("unknown timestamp field")

const (
	FieldEpoch = "epoch"
	FieldHuman = "human"
)

// Service handles timestamp conversions.
type Service struct {
	clock   hostenv.Clock
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new timestamp service.
func NewService(clock hostenv.Clock, log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		clock:   clock,
		logger:  logger.ForFeature(log, "timestamp"),
		metrics: rec,
	}
}

// Convert applies an edit of the epoch or human field.
func (s *Service) Convert(state State, field, value string) (State, error) {
	var (
		next State
		ok   bool
	)
	switch field {
	case FieldEpoch:
		next, ok = FromEpoch(state, value)
	case FieldHuman:
		next, ok = FromHuman(state, value)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.metrics.Observe("timestamp", field, ok)
	return next, nil
}

// SetFormat switches the display pattern.
func (s *Service) SetFormat(state State, format string) (State, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return state, err
	}
	s.metrics.Observe("timestamp", "format", true)
	return WithFormat(state, f), nil
}

// Now fills the state from the host clock.
func (s *Service) Now(state State) State {
	if s.clock == nil {
		s.metrics.Observe("timestamp", "now", false)
		return state
	}

	reading := s.clock.Now()
	next, ok := Now(state, reading)
	s.metrics.Observe("timestamp", "now", ok)
	if !ok {
		s.logger.Warn("Unparsable clock reading", zap.String("reading", reading))
	}
	return next
}
