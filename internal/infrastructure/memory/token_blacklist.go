// Package memory contiene stores en memoria con ciclo de vida propio,
// inyectados como dependencias (nunca estado global de proceso).
package memory

import (
	"sync"
	"time"
)

// TokenBlacklist guarda tokens revocados por logout hasta su expiración.
// Seguro para uso concurrente. Las entradas vencidas se purgan de forma
// perezosa en cada Revoke.
type TokenBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiración
}

// NewTokenBlacklist construye una blacklist vacía.
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

// Revoke marca el token como revocado hasta expiresAt.
func (b *TokenBlacklist) Revoke(token string, expiresAt time.Time) {
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	for t, exp := range b.tokens {
		if exp.Before(now) {
			delete(b.tokens, t)
		}
	}
	b.tokens[token] = expiresAt
}

// IsRevoked indica si el token fue revocado y sigue dentro de su vigencia.
func (b *TokenBlacklist) IsRevoked(token string) bool {
	b.mu.RLock()
	exp, ok := b.tokens[token]
	b.mu.RUnlock()
	if !ok {
		return false
	}
	return time.Now().Before(exp)
}
