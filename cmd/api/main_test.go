package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger lee docs/swagger.json al arrancar. El archivo va
// versionado junto al código: este test garantiza que existe, es JSON válido
// y documenta los endpoints principales de la API.
func TestSwaggerJSON_ExisteYEsValido(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repositorio")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    struct{ Title string }     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc), "docs/swagger.json debe ser JSON válido")

	assert.Equal(t, "2.0", doc.Swagger)
	assert.NotEmpty(t, doc.Info.Title)

	for _, path := range []string{
		"/api/auth/register",
		"/api/auth/login",
		"/api/products",
		"/api/stock/import",
		"/api/stock/export",
		"/api/stock/movements",
		"/api/orders",
		"/api/orders/{id}/receipt",
	} {
		assert.Contains(t, doc.Paths, path, "el documento debe describir %s", path)
	}
}
