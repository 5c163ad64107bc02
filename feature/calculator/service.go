package calculator

import (
	"toolbox/core/logger"
	"toolbox/core/metrics"

	"go.uber.org/zap"
)

// Evaluation is an expression and its result. Result is empty when evaluation failed.
type Evaluation struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// Service evaluates arithmetic expressions.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.Recorder
}

// NewService creates a new calculator service.
func NewService(log *zap.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		logger:  logger.ForFeature(log, "calculator"),
		metrics: rec,
	}
}

// Eval evaluates expression. Failures yield an empty result.
func (s *Service) Eval(expression string) Evaluation {
	result, err := Evaluate(expression)
	s.metrics.Observe("calculator", "eval", err == nil)
	if err != nil {
		s.logger.Debug("Expression rejected", zap.String("expression", expression), zap.Error(err))
	}
	return Evaluation{Expression: expression, Result: result}
}
