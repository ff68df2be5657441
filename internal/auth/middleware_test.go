package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/Kevin6098/roomi-sub001/internal/api/http"
	"github.com/Kevin6098/roomi-sub001/internal/auth"
	"github.com/Kevin6098/roomi-sub001/internal/domain"
	"github.com/Kevin6098/roomi-sub001/internal/observability"
)

type fakeVerifier struct {
	identity *domain.Identity
	err      error
}

func (f *fakeVerifier) VerifyToken(string) (*domain.Identity, error) {
	return f.identity, f.err
}

func newProtectedApp(t *testing.T, verifier auth.IdentityVerifier, extra ...fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	handlers := []fiber.Handler{auth.NewMiddleware(verifier).Handle}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.JSON(identity)
	})
	app.Get("/protected", handlers...)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) (message, code string) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Error, envelope.Code
}

func TestMiddleware_NoHeader(t *testing.T) {
	app := newProtectedApp(t, &fakeVerifier{err: auth.ErrTokenInvalid})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	message, code := decodeEnvelope(t, resp)
	assert.Equal(t, "Missing or invalid token", message)
	assert.Equal(t, "UNAUTHORIZED", code)
}

func TestMiddleware_WrongScheme(t *testing.T) {
	app := newProtectedApp(t, &fakeVerifier{err: auth.ErrTokenInvalid})

	for _, header := range []string{"Basic abc123", "bearer lowercase", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		message, _ := decodeEnvelope(t, resp)
		assert.Equal(t, "Missing or invalid token", message, "header %q", header)
	}
}

func TestMiddleware_VerifyFails(t *testing.T) {
	app := newProtectedApp(t, &fakeVerifier{err: auth.ErrTokenInvalid})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	message, code := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid or expired token", message)
	assert.Equal(t, "UNAUTHORIZED", code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	identity := &domain.Identity{ID: "u1", Email: "staff@example.com", Role: domain.RoleStaff}
	app := newProtectedApp(t, &fakeVerifier{identity: identity})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got domain.Identity
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, *identity, got)
}

func TestRequireOwner(t *testing.T) {
	t.Run("staff rejected", func(t *testing.T) {
		identity := &domain.Identity{ID: "u1", Email: "staff@example.com", Role: domain.RoleStaff}
		app := newProtectedApp(t, &fakeVerifier{identity: identity}, auth.RequireOwner())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		message, code := decodeEnvelope(t, resp)
		assert.Equal(t, "Admin only", message)
		assert.Equal(t, "UNAUTHORIZED", code)
	})

	t.Run("owner allowed", func(t *testing.T) {
		identity := &domain.Identity{ID: "u2", Email: "owner@example.com", Role: domain.RoleOwner}
		app := newProtectedApp(t, &fakeVerifier{identity: identity}, auth.RequireOwner())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing identity fails closed", func(t *testing.T) {
		app := fiber.New()
		httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
		app.Get("/owner", auth.RequireOwner(), func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/owner", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		message, _ := decodeEnvelope(t, resp)
		assert.Equal(t, "Admin only", message)
	})
}
