package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del punto de venta.
// Stock es un contador entero no negativo; solo se muta vía las operaciones
// atómicas del repositorio (TryReserve/Release/Increase), nunca por Update.
type Product struct {
	ID          string
	SKU         string // código único global
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       int64           // unidades disponibles, >= 0
	Unit        string          // unidad de venta: "pcs", "kg", etc.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
