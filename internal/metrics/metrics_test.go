package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/posts/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/posts/:id", "204"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/17", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/posts/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "ok", Result(nil))
	assert.Equal(t, "error", Result(errors.New("x")))
}
