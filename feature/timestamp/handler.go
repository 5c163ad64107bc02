package timestamp

import (
	"errors"

	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConvertRequest is the body of an epoch or human edit.
type ConvertRequest struct {
	State State  `json:"state"`
	Value string `json:"value"`
}

// FormatRequest is the body of a pattern change.
type FormatRequest struct {
	State  State  `json:"state"`
	Format string `json:"format"`
}

// NowRequest is the body of a "now" request.
type NowRequest struct {
	State State `json:"state"`
}

// Handler handles HTTP requests for the timestamp converter.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the timestamp routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/timestamp")
	group.Get("/formats", h.HandleFormats)
	group.Post("/format", h.HandleFormat)
	group.Post("/now", h.HandleNow)
	group.Post("/:field", h.HandleConvert)
}

// HandleFormats lists the supported patterns.
// @Summary Timestamp Formats
// @Tags timestamp
// @Produce json
// @Success 200 {object} map[string]interface{} "Formats and default"
// @Router /timestamp/formats [get]
func (h *Handler) HandleFormats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"formats": Formats,
		"default": DefaultFormat,
	})
}

// HandleConvert applies an edit of the epoch or human field.
// @Summary Convert Timestamp
// @Description Applies an edit of the epoch (seconds) or human field under the current format.
// @Tags timestamp
// @Accept json
// @Produce json
// @Param field path string true "Edited field" Enums(epoch, human)
// @Param request body ConvertRequest true "Current state and edited value"
// @Success 200 {object} State "Timestamp State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /timestamp/{field} [post]
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid timestamp request body", zap.Error(err))
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

// HandleFormat switches the display pattern.
// @Summary Change Timestamp Format
// @Description Switches the pattern and re-renders the human field from a valid epoch.
// @Tags timestamp
// @Accept json
// @Produce json
// @Param request body FormatRequest true "Current state and new format"
// @Success 200 {object} State "Timestamp State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /timestamp/format [post]
func (h *Handler) HandleFormat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req FormatRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid timestamp format body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	state, err := h.service.SetFormat(req.State, req.Format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(state)
}

// HandleNow fills the state from the host clock.
// @Summary Current Time
// @Tags timestamp
// @Accept json
// @Produce json
// @Param request body NowRequest false "Current state"
// @Success 200 {object} State "Timestamp State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /timestamp/now [post]
func (h *Handler) HandleNow(c *fiber.Ctx) error {
	var req NowRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.WithRayID(h.service.logger, c).Warn("Invalid timestamp now body", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	return c.JSON(h.service.Now(req.State))
}
