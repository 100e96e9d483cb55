package router

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/wichananm65/hbnb-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/hbnb-backend/internal/infrastructure/metrics"
	"github.com/wichananm65/hbnb-backend/internal/interface/http/handler"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

func newApp(m *metrics.Metrics) *fiber.App {
	facade := usecase.NewFacade(inmemory.NewStore(), zerolog.Nop())
	p := presenter.New()
	return New(Handlers{
		Users:     handler.NewUserHandler(facade, p),
		Amenities: handler.NewAmenityHandler(facade, p),
		Places:    handler.NewPlaceHandler(facade, facade, p),
		Reviews:   handler.NewReviewHandler(facade, p),
	}, Options{Logger: zerolog.Nop(), Metrics: m})
}

func TestHealth(t *testing.T) {
	app := newApp(nil)

	res, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestUnknownRouteReturnsJSON(t *testing.T) {
	app := newApp(nil)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/nothing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if res.StatusCode != fiber.StatusNotFound || !strings.Contains(string(b), handler.ErrCodeNotFound) {
		t.Fatalf("expected JSON 404, got %d: %s", res.StatusCode, b)
	}
}

func TestMetricsRoute(t *testing.T) {
	app := newApp(metrics.New())

	if _, err := app.Test(httptest.NewRequest("GET", "/api/v1/users", nil)); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `route="/api/v1/users"`) {
		t.Fatalf("expected users route in metrics, got %s", b)
	}

	app = newApp(nil)
	res, _ = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected /metrics to be absent without metrics, got %d", res.StatusCode)
	}
}
