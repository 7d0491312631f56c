package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
)

func TestTokenBlacklist_RevokeYConsulta(t *testing.T) {
	b := memory.NewTokenBlacklist()

	assert.False(t, b.IsRevoked("tok-1"), "un token nunca revocado no está en la lista")

	b.Revoke("tok-1", time.Now().Add(time.Hour))
	assert.True(t, b.IsRevoked("tok-1"))
	assert.False(t, b.IsRevoked("tok-2"))
}

func TestTokenBlacklist_EntradaVencidaDejaDeContar(t *testing.T) {
	b := memory.NewTokenBlacklist()

	// Revocación con expiración en el pasado: el token ya venció por sí solo,
	// el middleware JWT lo rechaza de todas formas.
	b.Revoke("tok-viejo", time.Now().Add(-time.Minute))
	assert.False(t, b.IsRevoked("tok-viejo"))
}

func TestTokenBlacklist_PurgaPerezosa(t *testing.T) {
	b := memory.NewTokenBlacklist()

	b.Revoke("tok-viejo", time.Now().Add(-time.Minute))
	// La siguiente revocación purga las entradas vencidas.
	b.Revoke("tok-nuevo", time.Now().Add(time.Hour))

	assert.False(t, b.IsRevoked("tok-viejo"))
	assert.True(t, b.IsRevoked("tok-nuevo"))
}
