package calculator

import (
	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EvalRequest is the body of an evaluation.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// Handler handles HTTP requests for the calculator.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the calculator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/calculator")
	group.Post("/eval", h.HandleEval)
}

// HandleEval evaluates an arithmetic expression.
// @Summary Evaluate Expression
// @Description Evaluates numeric literals, parentheses and + - * / % ^. The result is empty on any error, including division by zero.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body EvalRequest true "Expression"
// @Success 200 {object} Evaluation "Evaluation"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /calculator/eval [post]
func (h *Handler) HandleEval(c *fiber.Ctx) error {
	var req EvalRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Invalid calculator request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(h.service.Eval(req.Expression))
}
