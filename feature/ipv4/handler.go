package ipv4

import (
	"errors"

	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConvertRequest is the body of an IPv4 edit.
type ConvertRequest struct {
	State State  `json:"state"`
	Value string `json:"value"`
}

// Handler handles HTTP requests for the IPv4 converter.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the IPv4 routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ipv4")
	group.Post("/myip", h.HandleMyIP)
	group.Post("/:field", h.HandleConvert)
}

// HandleConvert applies an edit of one IPv4 field.
// @Summary Convert IPv4
// @Description Applies an edit of the dotted, integer or binary field and returns the new state.
// @Tags ipv4
// @Accept json
// @Produce json
// @Param field path string true "Edited field" Enums(dotted, integer, binary)
// @Param request body ConvertRequest true "Current state and edited value"
// @Success 200 {object} State "IPv4 State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /ipv4/{field} [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid ipv4 request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	state, err := h.service.Convert(req.State, c.Params("field"), req.Value)
	if err != nil {
		if errors.Is(err, ErrUnknownField) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(state)
}

// HandleMyIP fills the state with the caller's public address.
// @Summary My IP
// @Description Queries the host for the caller's public IPv4 address. A failed lookup returns an empty state.
// @Tags ipv4
// @Produce json
// @Success 200 {object} State "IPv4 State"
// @Router /ipv4/myip [post]
func (h *Handler) HandleMyIP(c *fiber.Ctx) error {
	return c.JSON(h.service.MyIP(c.UserContext()))
}
