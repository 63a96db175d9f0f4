package savedbuild

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

func makeAppWithBuildHandler(h *Handler) *fiber.App {
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

func newBuildApp() *fiber.App {
	recommender := builder.NewService(
		builder.StaticCatalog{Catalog: catalog.New(catalog.DefaultItems())},
		builder.DefaultProfiles(),
		builder.Slider{Min: 30000, Max: 300000, Step: 5000},
	)
	return makeAppWithBuildHandler(NewHandler(NewService(NewInMemoryRepository(), recommender, 10)))
}

func doRequest(t *testing.T, app *fiber.App, method, path, userID, body string) (int, string) {
	t.Helper()
	var req = httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestBuildRoutes_RequireAuth(t *testing.T) {
	app := newBuildApp()

	status, _ := doRequest(t, app, "GET", "/api/v1/builds", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = doRequest(t, app, "POST", "/api/v1/builds", "", `{"game":"cs2","budget":80000,"resolution":"1080p","playstyle":"pro"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = doRequest(t, app, "DELETE", "/api/v1/builds/1", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBuildRoutes_SaveListDelete(t *testing.T) {
	app := newBuildApp()

	status, body := doRequest(t, app, "POST", "/api/v1/builds", "5", `{"game":"cyberpunk-2077","budget":200000,"resolution":"4K","playstyle":"casual"}`)
	require.Equal(t, fiber.StatusCreated, status, body)

	var saved SavedBuild
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	assert.NotZero(t, saved.ID)
	assert.Equal(t, catalog.TierFlagship, saved.Recommendation.Tier)
	assert.Equal(t, "gpu-rtx4080super", saved.Recommendation.Items[catalog.CategoryGPU].ID)

	status, body = doRequest(t, app, "GET", "/api/v1/builds", "5", "")
	require.Equal(t, fiber.StatusOK, status)
	var list []SavedBuild
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)

	status, body = doRequest(t, app, "GET", "/api/v1/builds", "6", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", body)

	path := "/api/v1/builds/" + strconv.FormatInt(saved.ID, 10)
	status, _ = doRequest(t, app, "DELETE", path, "5", "")
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = doRequest(t, app, "DELETE", path, "5", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doRequest(t, app, "DELETE", "/api/v1/builds/abc", "5", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestBuildRoutes_InvalidConfig(t *testing.T) {
	app := newBuildApp()

	status, body := doRequest(t, app, "POST", "/api/v1/builds", "5", `{"game":"cs2","budget":80000,"resolution":"720p","playstyle":"pro"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, `"resolution"`)

	status, _ = doRequest(t, app, "POST", "/api/v1/builds", "5", `{"game":"cs2","budget":81234,"resolution":"1080p","playstyle":"pro"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
