package repository

import "github.com/jhoicas/pos-api/internal/domain/entity"

// OrderFilter filtro de listado de órdenes: por creador.
type OrderFilter struct {
	CreatedBy string
}

// OrderRepository puerto de persistencia de órdenes (snapshots inmutables).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter, limit, offset int) ([]*entity.Order, int, error)
}
