package auth

import "time"

// TokenBlacklist almacena tokens revocados por logout hasta su expiración.
// Es estado inyectado con ciclo de vida propio, no una variable de proceso:
// la implementación en memoria vive en infrastructure/memory y una futura
// implementación compartida (p. ej. Redis) no cambiaría este contrato.
type TokenBlacklist interface {
	Revoke(token string, expiresAt time.Time)
	IsRevoked(token string) bool
}
