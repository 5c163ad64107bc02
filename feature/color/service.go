package color

import (
	"errors"
	"fmt"

	"toolbox/core/hostenv"
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// ErrUnknownOperation is returned for an edit or action name the helper does not know.
var ErrUnknownOperation = errors.New("unknown color operation")

const (
	FieldHex  = "hex"
	FieldRGB  = "rgb"
	FieldCMYK = "cmyk"

	ActionDarker     = "darker"
	ActionLighter    = "lighter"
	ActionComplement = "complement"
	ActionRandom     = "random"
)

// Actions lists the derived actions in display order.
var Actions = []string{ActionDarker, ActionLighter, ActionComplement, ActionRandom}

// Service handles color conversions.
type Service struct {
	entropy hostenv.Entropy
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new color service.
func NewService(entropy hostenv.Entropy, log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		entropy: entropy,
		logger:  logger.ForFeature(log, "color"),
		metrics: rec,
	}
}

// Convert applies an edit of the hex, rgb or cmyk field.
func (s *Service) Convert(state State, field, value string) (State, error) {
	var (
		next State
		ok   bool
	)
	switch field {
	case FieldHex:
		next, ok = FromHex(state, value)
	case FieldRGB:
		next, ok = FromRGB(state, value)
	case FieldCMYK:
		next, ok = FromCMYK(state, value)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownOperation, field)
	}

	s.metrics.Observe("color", field, ok)
	return next, nil
}

// Apply runs one of the derived actions on the current color.
func (s *Service) Apply(state State, action string) (State, error) {
	var (
		next State
		ok   bool
	)
	switch action {
	case ActionDarker:
		next, ok = Darker(state)
	case ActionLighter:
		next, ok = Lighter(state)
	case ActionComplement:
		next, ok = Complement(state)
	case ActionRandom:
		if s.entropy == nil {
			return state, errors.New("no entropy source configured")
		}
		var err error
		next, err = Random(state, s.entropy)
		s.metrics.ObserveLookup("entropy", err)
		if err != nil {
			s.metrics.Observe("color", action, false)
			return state, err
		}
		ok = true
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownOperation, action)
	}

	s.metrics.Observe("color", action, ok)
	return next, nil
}
