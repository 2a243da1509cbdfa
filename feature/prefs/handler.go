package prefs

import (
	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for preferences.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the preference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/prefs")
	group.Get("/:key", h.HandleGetPreference)
	group.Put("/:key", h.HandleSetPreference)
	group.Delete("/:key", h.HandleDeletePreference)
}

// setPreferenceRequest is the PUT body.
type setPreferenceRequest struct {
	Value string `json:"value"`
}

// HandleGetPreference returns a stored preference.
// @Summary Get Preference
// @Description Get the preference value stored under the given key.
// @Tags prefs
// @Accept json
// @Produce json
// @Param key path string true "Preference key"
// @Success 200 {object} models.Preference "Preference"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prefs/{key} [get]
func (h *Handler) HandleGetPreference(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.service.logger, c)

	pref, err := h.service.Get(c.Context(), key)
	if err != nil {
		l.Error("Preference lookup failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if pref == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "preference not found",
		})
	}

	return c.JSON(pref)
}

// HandleSetPreference stores a preference value.
// @Summary Set Preference
// @Description Store a preference value under the given key, replacing any previous value.
// @Tags prefs
// @Accept json
// @Produce json
// @Param key path string true "Preference key"
// @Param request body setPreferenceRequest true "Preference value"
// @Success 200 {object} models.Preference "Stored preference"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prefs/{key} [put]
func (h *Handler) HandleSetPreference(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.service.logger, c)

	var req setPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	pref, err := h.service.Set(c.Context(), key, req.Value)
	if err != nil {
		l.Error("Preference write failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(pref)
}

// HandleDeletePreference removes a stored preference.
// @Summary Delete Preference
// @Description Remove the preference stored under the given key.
// @Tags prefs
// @Accept json
// @Produce json
// @Param key path string true "Preference key"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /prefs/{key} [delete]
func (h *Handler) HandleDeletePreference(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), key); err != nil {
		l.Error("Preference delete failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
