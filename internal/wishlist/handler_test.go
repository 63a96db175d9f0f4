package wishlist

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

func makeAppWithWishlistHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func send(app *fiber.App, method, userID, body string) (int, string) {
	req := httptest.NewRequest(method, "/api/v1/wishlist", nil)
	if body != "" {
		req = httptest.NewRequest(method, "/api/v1/wishlist", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, err := app.Test(req)
	if err != nil {
		return 0, err.Error()
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestWishlistRoutes(t *testing.T) {
	catalogRepo := catalog.NewInMemoryRepository(catalog.DefaultItems())
	items := catalog.NewService(catalogRepo)
	app := makeAppWithWishlistHandler(NewHandler(NewService(NewInMemoryRepository(), items)))

	if status, _ := send(app, "GET", "", ""); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", status)
	}

	status, body := send(app, "GET", "9", "")
	if status != fiber.StatusOK || body != "[]" {
		t.Fatalf("expected empty wishlist, got %d %s", status, body)
	}

	status, body = send(app, "POST", "9", `{"category":"monitor","id":"mon-27-4k-144"}`)
	if status != fiber.StatusOK || !strings.Contains(body, `"wishlist":["monitor:mon-27-4k-144"]`) {
		t.Fatalf("unexpected add response %d %s", status, body)
	}
	send(app, "POST", "9", `{"category":"gpu","id":"gpu-rtx4090"}`)

	if status, _ := send(app, "POST", "9", `{"category":"Monitor","id":"mon-27-4k-144"}`); status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", status)
	}
	if status, _ := send(app, "POST", "9", `{"category":"gpu","id":"gpu-voodoo"}`); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", status)
	}
	if status, _ := send(app, "POST", "9", `{"category":"cpu","id":"x"}`); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad category, got %d", status)
	}

	// removed catalog items drop out of the resolved list but keep order
	if err := catalogRepo.Delete(catalog.CategoryMonitor, "mon-27-4k-144"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, body = send(app, "GET", "9", "")
	if strings.Contains(body, "mon-27-4k-144") || !strings.Contains(body, `"id":"gpu-rtx4090"`) {
		t.Fatalf("unexpected wishlist after catalog delete: %s", body)
	}

	status, body = send(app, "DELETE", "9", `{"category":"gpu","id":"gpu-rtx4090"}`)
	if status != fiber.StatusOK || !strings.Contains(body, `"wishlist":["monitor:mon-27-4k-144"]`) {
		t.Fatalf("unexpected remove response %d %s", status, body)
	}
	if status, _ := send(app, "DELETE", "9", `{"category":"gpu","id":"gpu-rtx4090"}`); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 removing absent item, got %d", status)
	}

	// other users are unaffected
	if _, body := send(app, "GET", "10", ""); body != "[]" {
		t.Fatalf("expected empty wishlist for another user, got %s", body)
	}
}
