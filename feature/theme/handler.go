package theme

import (
	"errors"

	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetRequest is the body of a preference update.
type SetRequest struct {
	Key  string `json:"key"`
	Mode string `json:"mode"`
}

// Handler handles HTTP requests for theme preferences.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the theme routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/theme")
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandleSet)
	group.Delete("/", h.HandleReset)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrInvalidMode) || errors.Is(err, ErrInvalidKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Theme store failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleGet returns the stored theme.
// @Summary Get Theme
// @Tags theme
// @Produce json
// @Param key query string false "Preference key" default(default)
// @Success 200 {object} Setting "Theme Setting"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /theme [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	s, err := h.service.Get(c.UserContext(), c.Query("key"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

// HandleSet stores a theme.
// @Summary Set Theme
// @Tags theme
// @Accept json
// @Produce json
// @Param request body SetRequest true "Key and mode (Automatic, DarkMode, LightMode)"
// @Success 200 {object} Setting "Theme Setting"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /theme [put]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	var req SetRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Invalid theme request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	s, err := h.service.Set(c.UserContext(), req.Key, req.Mode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

// HandleReset removes a stored theme.
// @Summary Reset Theme
// @Tags theme
// @Produce json
// @Param key query string false "Preference key" default(default)
// @Success 200 {object} Setting "Theme Setting"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /theme [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	s, err := h.service.Reset(c.UserContext(), c.Query("key"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}
