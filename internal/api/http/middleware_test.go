package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kevin6098/roomi-sub001/internal/observability"
	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

type envelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newErrorApp(t *testing.T, metrics *observability.Metrics) *fiber.App {
	t.Helper()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	return app
}

func fetch(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestErrorMiddleware_UnknownErrorBecomesInternal(t *testing.T) {
	app := newErrorApp(t, observability.NewMetrics())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	status, env := fetch(t, app, "/boom")
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Code)
}

func TestErrorMiddleware_APIErrorPassesThrough(t *testing.T) {
	app := newErrorApp(t, observability.NewMetrics())
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return apierror.NewConflict("sku already in use")
	})

	status, env := fetch(t, app, "/conflict")
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "sku already in use", env.Error)
	assert.Equal(t, "CONFLICT", env.Code)
}

func TestErrorMiddleware_WrappedAPIErrorResolved(t *testing.T) {
	app := newErrorApp(t, observability.NewMetrics())
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return apierror.NewNotFound("item")
	})

	status, env := fetch(t, app, "/wrapped")
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "item not found", env.Error)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestErrorMiddleware_PanicRecovered(t *testing.T) {
	app := newErrorApp(t, observability.NewMetrics())
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	status, env := fetch(t, app, "/panic")
	assert.Equal(t, nethttp.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Code)
}

func TestErrorMiddleware_RecordsErrorMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newErrorApp(t, metrics)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apierror.NewConflict("nope")
	})

	_, _ = fetch(t, app, "/fail")

	_, errCounts := metrics.Snapshot()
	total := int64(0)
	for _, n := range errCounts {
		total += n
	}
	assert.Equal(t, int64(1), total)
}
