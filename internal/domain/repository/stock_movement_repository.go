package repository

import (
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// MovementFilter filtro de listado del ledger: por producto, tipo y rango de fechas.
type MovementFilter struct {
	ProductID string
	Type      string // import | export | "" (todos)
	From      *time.Time
	To        *time.Time
}

// StockMovementRepository puerto del ledger de movimientos: inserción pura,
// sin lógica condicional. Los registros jamás se actualizan ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error)
}
