package user

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

// helper to build an app with a simple "bootstrap" middleware that injects a
// jwt.Token into locals when the X-User-ID header is provided.
func makeAppWithUserHandler(uHandler *Handler) *fiber.App {
	app := fiber.New()
	uHandler.RegisterPublicRoutes(app)
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
	uHandler.RegisterProtectedRoutes(app)
	return app
}

func postJSON(app *fiber.App, path, body string) (*httptestResponse, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		return nil, err
	}
	b, _ := io.ReadAll(res.Body)
	return &httptestResponse{status: res.StatusCode, body: string(b)}, nil
}

type httptestResponse struct {
	status int
	body   string
}

func TestSignUpAndSignIn(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(nil)), testSecret)
	app := makeAppWithUserHandler(handler)

	res, err := postJSON(app, "/api/v1/sign-up", `{"email":"ana@example.com","password":"hunter2hunter2","displayName":"Ana"}`)
	if err != nil {
		t.Fatalf("sign-up request failed: %v", err)
	}
	if res.status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", res.status, res.body)
	}
	if strings.Contains(res.body, "hunter2") || strings.Contains(res.body, `"password"`) {
		t.Fatalf("password leaked in response: %s", res.body)
	}

	res, _ = postJSON(app, "/api/v1/sign-up", `{"email":"ANA@example.com","password":"anotherpass","displayName":"Ana 2"}`)
	if res.status != fiber.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", res.status)
	}

	res, _ = postJSON(app, "/api/v1/sign-in", `{"email":"ana@example.com","password":"wrong-password"}`)
	if res.status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 on wrong password, got %d", res.status)
	}

	res, _ = postJSON(app, "/api/v1/sign-in", `{"email":"ana@example.com","password":"hunter2hunter2"}`)
	if res.status != fiber.StatusOK {
		t.Fatalf("expected 200 on sign-in, got %d: %s", res.status, res.body)
	}

	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal([]byte(res.body), &body); err != nil {
		t.Fatalf("decode sign-in body: %v", err)
	}
	if body.Token == "" || body.User.ID != 1 || body.User.DisplayName != "Ana" {
		t.Fatalf("unexpected sign-in body: %s", res.body)
	}

	tok, err := jwt.Parse(body.Token, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims := tok.Claims.(jwt.MapClaims); claims["user_id"].(float64) != 1 {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
}

func TestSignUp_Validation(t *testing.T) {
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(nil)), testSecret))

	res, _ := postJSON(app, "/api/v1/sign-up", `{"email":"not-an-email","password":"short","displayName":""}`)
	if res.status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.status)
	}
	for _, field := range []string{"email", "password", "displayName"} {
		if !strings.Contains(res.body, `"`+field+`"`) {
			t.Fatalf("expected error for %s, got %s", field, res.body)
		}
	}
}

func TestProfileRoute_RegistrationAndAuth(t *testing.T) {
	seed := []User{{ID: 7, Email: "j@example.com", Password: "$2a$10$hash", DisplayName: "Jenny"}}
	app := makeAppWithUserHandler(NewHandler(NewService(NewInMemoryRepository(seed)), testSecret))

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected unauthorized status, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"displayName":"Jenny"`) || strings.Contains(string(b), "$2a$") {
		t.Fatalf("unexpected profile body: %s", string(b))
	}

	req = httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("X-User-ID", "99")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("PUT", "/api/v1/profile", strings.NewReader(`{"displayName":"  Jen  "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on profile update, got %d", res.StatusCode)
	}
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"displayName":"Jen"`) {
		t.Fatalf("display name not updated: %s", string(b))
	}
}

func TestMiddleware_RealToken(t *testing.T) {
	seed := []User{{ID: 3, Email: "k@example.com", DisplayName: "Kai"}}
	handler := NewHandler(NewService(NewInMemoryRepository(seed)), testSecret)

	app := fiber.New()
	app.Use(Middleware(testSecret))
	handler.RegisterProtectedRoutes(app)

	signed, err := IssueToken([]byte(testSecret), seed[0], time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", res.StatusCode)
	}

	forged, _ := IssueToken([]byte("other-secret"), seed[0], time.Now().Add(time.Hour))
	req = httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with forged token, got %d", res.StatusCode)
	}

	expired, _ := IssueToken([]byte(testSecret), seed[0], time.Now().Add(-time.Hour))
	req = httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with expired token, got %d", res.StatusCode)
	}
}

func TestRequireAdmin(t *testing.T) {
	newApp := func(admins []string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if v := c.Get("X-User-ID"); v != "" {
				id, _ := strconv.Atoi(v)
				claims := jwt.MapClaims{"user_id": id}
				if e := c.Get("X-Email"); e != "" {
					claims["email"] = e
				}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
			return c.Next()
		})
		app.Delete("/admin-only", RequireAdmin(admins), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	send := func(app *fiber.App, userID, email string) int {
		req := httptest.NewRequest("DELETE", "/admin-only", nil)
		if userID != "" {
			req.Header.Set("X-User-ID", userID)
		}
		if email != "" {
			req.Header.Set("X-Email", email)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return res.StatusCode
	}

	app := newApp([]string{" Ops@Example.com "})
	if got := send(app, "", ""); got != fiber.StatusUnauthorized {
		t.Errorf("no token: expected 401 got %d", got)
	}
	if got := send(app, "2", "buyer@example.com"); got != fiber.StatusForbidden {
		t.Errorf("non-admin: expected 403 got %d", got)
	}
	if got := send(app, "2", ""); got != fiber.StatusForbidden {
		t.Errorf("missing email claim: expected 403 got %d", got)
	}
	if got := send(app, "1", "ops@example.COM"); got != fiber.StatusOK {
		t.Errorf("admin: expected 200 got %d", got)
	}

	if got := send(newApp(nil), "1", "ops@example.com"); got != fiber.StatusForbidden {
		t.Errorf("empty admin list: expected 403 got %d", got)
	}
}
