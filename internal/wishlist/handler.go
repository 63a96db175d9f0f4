package wishlist

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/logging"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/user"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/validation"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.addItem)
	app.Delete("/api/v1/wishlist", h.removeItem)
}

type wishlistRequest struct {
	Category string `json:"category" validate:"required"`
	ID       string `json:"id" validate:"required"`
}

func (r wishlistRequest) parse() (catalog.Category, map[string]string) {
	if ves := validation.Struct(r); ves != nil {
		return "", ves
	}
	cat, err := catalog.ParseCategory(r.Category)
	if err != nil {
		return "", map[string]string{"category": "invalid category"}
	}
	return cat, nil
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cat, ves := payload.parse()
	if ves != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	keys, err := h.service.Add(userID, cat, payload.ID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrAlreadyInWishlist):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product already in wishlist"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"key": catalog.Key(cat, payload.ID), "wishlist": keys})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cat, ves := payload.parse()
	if ves != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	keys, err := h.service.Remove(userID, cat, payload.ID)
	if err != nil {
		if errors.Is(err, ErrNotInWishlist) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product not in wishlist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"key": catalog.Key(cat, payload.ID), "wishlist": keys})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.List(userID)
	if err != nil {
		logging.Error().Err(err).Int("user_id", userID).Msg("load wishlist failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}
