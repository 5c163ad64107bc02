package theme

import (
	"context"

	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// Setting is a key and its mode.
type Setting struct {
	Key  string `json:"key"`
	Mode Mode   `json:"mode"`
}

// Service reads and writes theme preferences.
type Service struct {
	store   Store
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new theme service.
func NewService(store Store, log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		logger:  logger.ForFeature(log, "theme"),
		metrics: rec,
	}
}

func keyOrDefault(key string) (string, error) {
	if key == "" {
		return DefaultKey, nil
	}
	return key, ValidateKey(key)
}

// Get returns the preference stored under key.
func (s *Service) Get(ctx context.Context, key string) (Setting, error) {
	key, err := keyOrDefault(key)
	if err != nil {
		return Setting{}, err
	}
	m, err := s.store.Get(ctx, key)
	s.metrics.Observe("theme", "get", err == nil)
	if err != nil {
		return Setting{}, err
	}
	return Setting{Key: key, Mode: m}, nil
}

// Set validates and stores mode under key.
func (s *Service) Set(ctx context.Context, key, mode string) (Setting, error) {
	key, err := keyOrDefault(key)
	if err != nil {
		return Setting{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		s.metrics.Observe("theme", "set", false)
		return Setting{}, err
	}
	if err := s.store.Set(ctx, key, m); err != nil {
		s.metrics.Observe("theme", "set", false)
		return Setting{}, err
	}
	s.metrics.Observe("theme", "set", true)
	s.logger.Debug("Theme preference stored", zap.String("key", key), zap.String("mode", string(m)))
	return Setting{Key: key, Mode: m}, nil
}

// Reset removes the preference so key reads back as Automatic.
func (s *Service) Reset(ctx context.Context, key string) (Setting, error) {
	key, err := keyOrDefault(key)
	if err != nil {
		return Setting{}, err
	}
	err = s.store.Delete(ctx, key)
	s.metrics.Observe("theme", "reset", err == nil)
	if err != nil {
		return Setting{}, err
	}
	return Setting{Key: key, Mode: Automatic}, nil
}
