package ipv4

import (
	"context"
	"errors"
	"fmt"

	"toolbox/core/hostenv"
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// ErrUnknownField is returned for a field other than dotted, integer or binary.
var ErrUnknownField = errors.New("unknown ipv4 field")

const (
	FieldDotted  = "dotted"
	FieldInteger = "integer"
	FieldBinary  = "binary"
)

// Service handles IPv4 conversions.
type Service struct {
	lookup  hostenv.IPLookup
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new IPv4 service. lookup may be nil when "my IP" is unavailable.
func NewService(lookup hostenv.IPLookup, log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		lookup:  lookup,
		logger:  logger.ForFeature(log, "ipv4"),
		metrics: rec,
	}
}

// Convert applies an edit of the named field.
func (s *Service) Convert(state State, field, value string) (State, error) {
	var (
		next State
		ok   bool
	)
	switch field {
	case FieldDotted:
		next, ok = FromDotted(state, value)
	case FieldInteger:
		next, ok = FromInteger(state, value)
	case FieldBinary:
		next, ok = FromBinary(state, value)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.metrics.Observe("ipv4", field, ok)
	return next, nil
}

// MyIP fills the state with the caller's public address.
// A failed lookup behaves like an unparsable address and clears all fields.
func (s *Service) MyIP(ctx context.Context) State {
	var addr string
	if s.lookup != nil {
		var err error
		addr, err = s.lookup.MyIP(ctx)
		s.metrics.ObserveLookup("ip", err)
		if err != nil {
			s.logger.Warn("IP lookup failed", zap.Error(err))
		}
	}

	next, ok := FromLookup(addr)
	s.metrics.Observe("ipv4", "myip", ok)
	return next
}
