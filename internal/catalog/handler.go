package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/validation"
)

type Handler struct {
	service    *Service
	allowReset bool
}

// NewHandler builds the catalog handler. allowReset enables the dev-only
// reseed endpoint.
func NewHandler(service *Service, allowReset bool) *Handler {
	return &Handler{service: service, allowReset: allowReset}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:category", h.getProductsByCategory)
	app.Get("/api/v1/product/:category/:id", h.getProduct)

	app.Post("/dev/reset-catalog", h.resetCatalog)
}

// RegisterProtectedRoutes mounts the catalog write routes behind guards,
// which run in order before each handler.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App, guards ...fiber.Handler) {
	app.Post("/api/v1/products", withGuards(guards, h.createProduct)...)
	app.Put("/api/v1/product/:category/:id", withGuards(guards, h.updateProduct)...)
	app.Delete("/api/v1/product/:category/:id", withGuards(guards, h.deleteProduct)...)
}

func withGuards(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	return append(append([]fiber.Handler{}, guards...), h)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	cats, err := h.service.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cats)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	var f Filter
	if v := c.Query("category"); v != "" {
		cat, err := ParseCategory(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		f.Category = cat
	}
	if v := c.Query("tier"); v != "" {
		tier, err := ParseTier(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		f.Tier = tier
	}
	f.Brand = c.Query("brand")

	items, err := h.service.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getProductsByCategory(c *fiber.Ctx) error {
	cat, err := ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	items, err := h.service.List(Filter{Category: cat})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	cat, err := ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	it, err := h.service.Get(cat, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(it)
}

// resetCatalog replaces the catalog with the posted list, or with the
// default stock when the body is not a valid list.
func (h *Handler) resetCatalog(c *fiber.Ctx) error {
	if !h.allowReset {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var items []Item
	if err := c.BodyParser(&items); err != nil {
		items = DefaultItems()
	}
	for i := range items {
		if ves := validateItemPayload(&items[i]); len(ves) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
		}
	}
	if err := h.service.ResetCatalog(items); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"inserted": len(items)})
}

// validateItemPayload normalizes enum fields in place and returns every
// validation error keyed by JSON field name.
func validateItemPayload(it *Item) map[string]string {
	errs := validation.Struct(it)
	if errs == nil {
		errs = map[string]string{}
	}
	if cat, err := ParseCategory(string(it.Category)); err != nil {
		errs["category"] = "invalid category"
	} else {
		it.Category = cat
	}
	if tier, err := ParseTier(string(it.Tier)); err != nil {
		errs["tier"] = "invalid tier"
	} else {
		it.Tier = tier
	}
	if it.Resolution != "" {
		if res, err := ParseResolution(string(it.Resolution)); err != nil {
			errs["resolution"] = "invalid resolution"
		} else {
			it.Resolution = res
		}
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*it)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	cat, err := ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	id := c.Params("id")

	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// the path owns identity
	it.Category = cat
	it.ID = id
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(cat, id, *it)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	cat, err := ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.Delete(cat, c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendString("Product deleted")
}
