package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de una orden con snapshot de nombre y precio al momento de
// la compra. ProductID es referencia débil (el producto puede cambiar después).
type OrderItem struct {
	ProductID string
	Name      string // snapshot
	Qty       int64
	Price     decimal.Decimal // snapshot
}

// Subtotal devuelve qty × precio snapshot de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Qty))
}

// Order representa una venta inmutable: líneas con snapshots y total
// calculado una sola vez al crearla. Su existencia implica exactamente un
// movimiento "export" por línea registrado en el ledger.
type Order struct {
	ID        string
	Items     []OrderItem
	Total     decimal.Decimal
	CreatedBy string
	CreatedAt time.Time
}

// CalculateTotal suma los subtotales de las líneas usando los snapshots.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
