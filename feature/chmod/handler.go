package chmod

import (
	"toolbox/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EditRequest is the body of an octal or text edit.
type EditRequest struct {
	State *State `json:"state"`
	Value string `json:"value"`
}

// ToggleRequest is the body of a bit toggle.
type ToggleRequest struct {
	State *State `json:"state"`
	Who   string `json:"who"`
	Perm  string `json:"perm"`
}

func stateOrInitial(s *State) State {
	if s == nil {
		return NewState()
	}
	return *s
}

// Handler handles HTTP requests for the chmod calculator.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the chmod routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/chmod")
	group.Get("/", h.HandleInitial)
	group.Post("/toggle", h.HandleToggle)
	group.Post("/octal", h.HandleOctal)
	group.Post("/text", h.HandleText)
}

// HandleInitial returns the all-clear state.
// @Summary Initial Chmod State
// @Tags chmod
// @Produce json
// @Success 200 {object} State "Chmod State"
// @Router /chmod [get]
func (h *Handler) HandleInitial(c *fiber.Ctx) error {
	return c.JSON(NewState())
}

// HandleToggle flips one permission bit.
// @Summary Toggle Permission Bit
// @Description Flips one bit (who: owner|group|public, perm: read|write|execute) and re-derives octal, text and command. A missing state starts from 000.
// @Tags chmod
// @Accept json
// @Produce json
// @Param request body ToggleRequest true "Current state and bit"
// @Success 200 {object} State "Chmod State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /chmod/toggle [post]
func (h *Handler) HandleToggle(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid chmod toggle body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	state, err := h.service.Toggle(stateOrInitial(req.State), req.Who, req.Perm)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(state)
}

// HandleOctal applies an edit of the octal field.
// @Summary Set Octal Permissions
// @Description Applies a three-digit octal value. Any other input is echoed and the rest of the state is kept.
// @Tags chmod
// @Accept json
// @Produce json
// @Param request body EditRequest true "Current state and octal value"
// @Success 200 {object} State "Chmod State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /chmod/octal [post]
func (h *Handler) HandleOctal(c *fiber.Ctx) error {
	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Invalid chmod octal body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(h.service.SetOctal(stateOrInitial(req.State), req.Value))
}

// HandleText applies an edit of the symbolic field.
// @Summary Set Symbolic Permissions
// @Description Applies a nine-character rwx string. Any other input is echoed and the rest of the state is kept.
// @Tags chmod
// @Accept json
// @Produce json
// @Param request body EditRequest true "Current state and symbolic value"
// @Success 200 {object} State "Chmod State"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /chmod/text [post]
func (h *Handler) HandleText(c *fiber.Ctx) error {
	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Invalid chmod text body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(h.service.SetText(stateOrInitial(req.State), req.Value))
}
