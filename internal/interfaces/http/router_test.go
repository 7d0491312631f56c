package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
)

// buildRouterApp registra el router completo sin casos de uso: los middlewares
// de autorización deciden antes de llegar a los handlers, que aquí no se invocan.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Blacklist: memory.NewTokenBlacklist(),
		JWTSecret: testJWTSecret,
	})
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por ruta — el grupo /stock es exclusivo de admin
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_StockEsSoloAdmin(t *testing.T) {
	app := buildRouterApp()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/stock/import"},
		{http.MethodPost, "/api/stock/export"},
		{http.MethodGet, "/api/stock/movements"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("Authorization", tokenForRole(t, "cashier"))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"%s %s debe rechazar a cashier", tc.method, tc.path)

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "FORBIDDEN")
	}
}

func TestRouter_StockSinToken_Retorna401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodGet, "/api/stock/movements", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
