package radix

import (
	"errors"

	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConvertRequest is the body of a radix edit.
type ConvertRequest struct {
	Value string `json:"value"`
}

// Handler handles HTTP requests for the radix converter.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the radix routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/radix")
	group.Post("/:field", h.HandleConvert)
}

// HandleConvert converts an edited field into the other three bases.
// @Summary Convert Radix
// @Description Parses the value in the base named by the path (hex, dec, oct, bin) and returns all four representations. Invalid input clears the other fields.
// @Tags radix
// @Accept json
// @Produce json
// @Param field path string true "Edited field" Enums(hex, dec, oct, bin)
// @Param request body ConvertRequest true "Edited value"
// @Success 200 {object} Quadruple "Radix Quadruple"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /radix/{field} [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid radix request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	q, err := h.service.Convert(c.Params("field"), req.Value)
	if err != nil {
		if errors.Is(err, ErrUnknownBase) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Radix conversion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(q)
}
