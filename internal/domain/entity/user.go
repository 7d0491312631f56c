package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (admin o cajero).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // admin | cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
