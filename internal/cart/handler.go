package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/user"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Post("/api/v1/cart/build", h.addBuild)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartRequest struct {
	Category string `json:"category" validate:"required"`
	ID       string `json:"id" validate:"required"`
	// nil means one; negative values decrement
	Quantity *int `json:"quantity,omitempty"`
}

// buildCartRequest either lists items explicitly or describes a build to
// recommend. Items win when both are present.
type buildCartRequest struct {
	builder.BuildRequest
	Items []ItemRef `json:"items"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validation.Struct(payload); ves != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	cat, err := catalog.ParseCategory(payload.Category)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	cart, err := h.service.Add(userID, cat, payload.ID, qty)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cart)
}

func (h *Handler) addBuild(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(buildCartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if len(payload.Items) > 0 {
		for i := range payload.Items {
			if ves := validation.Struct(payload.Items[i]); ves != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
			}
			cat, err := catalog.ParseCategory(string(payload.Items[i].Category))
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "message": err.Error()})
			}
			payload.Items[i].Category = cat
		}
		cart, err := h.service.AddItems(userID, payload.Items)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.JSON(cart)
	}

	cfg, ves := payload.BuildRequest.Config()
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	cart, rec, err := h.service.AddBuild(userID, cfg)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(fiber.Map{"cart": cart, "recommendation": rec})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	cart, err := h.service.Get(userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(cart)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(userID); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case errors.Is(err, ErrInvalidUser):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.Status(builder.ErrorStatus(err)).JSON(fiber.Map{"message": err.Error()})
}
