package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saeid-a/CoachAIBack/internal/config"
	"github.com/saeid-a/CoachAIBack/internal/repository"
)

func TestNewAppAllowsAnyOriginByDefault(t *testing.T) {
	app := NewApp(&config.Config{CORSAllowOrigins: "*"})
	if err := RegisterRoutes(app, &config.Config{}, repository.NewMemoryProfileRepository(), &echoGenerator{}); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://client.example")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(fiber.HeaderAccessControlAllowOrigin); got != "*" {
		t.Fatalf("expected wildcard CORS, got %q", got)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestNewAppRestrictsConfiguredOrigins(t *testing.T) {
	app := NewApp(&config.Config{CORSAllowOrigins: "https://coach.example"})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://other.example")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(fiber.HeaderAccessControlAllowOrigin); got != "" {
		t.Fatalf("expected foreign origin to be refused, got %q", got)
	}
}

func TestNewAppRecoversPanics(t *testing.T) {
	app := NewApp(&config.Config{CORSAllowOrigins: "*"})
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

func TestNewAppLogsRecoveredPanics(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	app := NewApp(&config.Config{CORSAllowOrigins: "*"})
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	out := buf.String()
	if !strings.Contains(out, `"message":"http request"`) || !strings.Contains(out, `"status":500`) {
		t.Fatalf("expected an access log line with status 500, got %q", out)
	}
	if !strings.Contains(out, `"path":"/panic"`) {
		t.Fatalf("expected the panicking path in the access log, got %q", out)
	}
}

func TestNewAppDecodesEscapedUserIDs(t *testing.T) {
	app := NewApp(&config.Config{CORSAllowOrigins: "*"})
	if err := RegisterRoutes(app, &config.Config{}, repository.NewMemoryProfileRepository(), &echoGenerator{}); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	for _, id := range []string{"jane doe", "zoë"} {
		body, _ := json.Marshal(map[string]string{"userId": id, "age": "30"})
		req := httptest.NewRequest(http.MethodPost, "/save-user", bytes.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("save %q: %v", id, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("save %q: expected 200, got %d", id, resp.StatusCode)
		}
	}

	for path, want := range map[string]string{
		"/get-user/jane%20doe": "jane doe",
		"/get-user/zo%C3%AB":   "zoë",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var got map[string]any
		err = json.NewDecoder(resp.Body).Decode(&got)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d (%v)", path, resp.StatusCode, got)
		}
		if got["userId"] != want {
			t.Fatalf("GET %s: expected userId %q, got %v", path, want, got["userId"])
		}
	}
}
