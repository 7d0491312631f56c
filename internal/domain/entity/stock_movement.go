package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeImport = "import" // entrada de mercancía
	MovementTypeExport = "export" // salida (venta u operación administrativa)
)

// StockMovement representa una entrada del ledger de stock: registro
// inmutable y append-only de cada cambio sobre el stock de un producto.
// ProductID es referencia débil: el histórico sobrevive al producto.
// Invariante: stock actual == stock inicial + Σ(import) − Σ(export).
type StockMovement struct {
	ID        string
	Type      string // import | export
	ProductID string
	Quantity  int64 // siempre positivo; el signo lo da Type
	Note      string
	CreatedBy string // UserID del actor
	CreatedAt time.Time
}
