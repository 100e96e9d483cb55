package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		res, err := app.Test(httptest.NewRequest("GET", "/items/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), `hbnb_http_requests_total{method="GET",route="/items/:id",status="204"} 2`)
}

func TestHandlerExposesStoreGauge(t *testing.T) {
	m := New()
	require.NoError(t, m.RegisterStore(func() map[string]int {
		return map[string]int{"users": 3}
	}))

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	res, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.True(t, strings.Contains(string(body), `hbnb_store_entities{kind="users"} 3`), string(body))
}
