package logging

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(Config{})

	l := With("builder")
	l.Debug().Str("game", "valorant").Msg("resolved profile")

	out := buf.String()
	if !strings.Contains(out, `"component":"builder"`) || !strings.Contains(out, `"game":"valorant"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(Config{})

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level filter not applied: %s", out)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})
	defer Init(Config{})

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	res, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.Header.Get(RequestIDHeader) == "" {
		t.Fatalf("expected %s header to be set", RequestIDHeader)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	res2, _ := app.Test(req)
	if res2.Header.Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("incoming request id should be reused, got %q", res2.Header.Get(RequestIDHeader))
	}
	if !strings.Contains(buf.String(), `"path":"/ping"`) {
		t.Fatalf("request line missing: %s", buf.String())
	}
}
