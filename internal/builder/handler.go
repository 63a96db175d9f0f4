package builder

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/builder/options", h.getOptions)
	app.Post("/api/v1/builder/recommend", h.recommend)
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	return c.JSON(h.service.Options())
}

func (h *Handler) recommend(c *fiber.Ctx) error {
	payload := new(BuildRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cfg, ves := payload.Config()
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	rec, err := h.service.Recommend(cfg)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(rec)
}

// ErrorStatus maps a Recommend error to an HTTP status. Input errors are
// 400; anything else (catalog misconfiguration, storage) is 500.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrInvalidResolution),
		errors.Is(err, ErrInvalidPlaystyle),
		errors.Is(err, ErrBudgetOutOfRange),
		errors.Is(err, ErrBudgetStep):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
