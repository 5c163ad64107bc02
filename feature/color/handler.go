package color

import (
	"errors"

	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConvertRequest is the body of a color edit or action. Actions ignore Value.
type ConvertRequest struct {
	State State  `json:"state"`
	Value string `json:"value"`
}

// Handler handles HTTP requests for the color helper.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the color routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/color")
	for _, action := range Actions {
		group.Post("/"+action, h.HandleAction(action))
	}
	group.Post("/:field", h.HandleConvert)
}

// HandleConvert applies an edit of one color field.
// @Summary Convert Color
// @Description Applies an edit of the hex, rgb or cmyk field. Invalid input is echoed and the other fields are kept.
// @Tags color
// @Accept json
// @Produce json
// @Param field path string true "Edited field" Enums(hex, rgb, cmyk)
// @Param request body ConvertRequest true "Current state and edited value"
// @Success 200 {object} State "Color State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /color/{field} [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid color request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	state, err := h.service.Convert(req.State, c.Params("field"), req.Value)
	if err != nil {
		if errors.Is(err, ErrUnknownOperation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(state)
}

// HandleAction returns the handler for one derived action.
// @Summary Color Action
// @Description Darker, lighter and complement operate on the current hex and are a no-op when it is invalid. Random picks a new color from the host entropy source.
// @Tags color
// @Accept json
// @Produce json
// @Param action path string true "Action" Enums(darker, lighter, complement, random)
// @Param request body ConvertRequest true "Current state"
// @Success 200 {object} State "Color State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /color/{action} [post]
func (h *Handler) HandleAction(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		var req ConvertRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				l.Warn("Invalid color request body", zap.Error(err))
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
			}
		}

		state, err := h.service.Apply(req.State, action)
		if err != nil {
			l.Error("Color action failed", zap.String("action", action), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(state)
	}
}
