package order

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// StockStore operaciones atómicas de stock que consume el coordinador.
// TryReserve es el único punto de serialización entre órdenes concurrentes:
// un decremento condicional por producto, sin lock en proceso.
type StockStore interface {
	TryReserve(productID string, qty int64) (*entity.Product, error)
	Release(productID string, qty int64) error
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los movimientos "export" y la
// orden se persistan juntos o no se persista nada.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
