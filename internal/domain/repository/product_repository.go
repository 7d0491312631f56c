package repository

import "github.com/jhoicas/pos-api/internal/domain/entity"

// ProductFilter filtro de listado: substring case-insensitive sobre name o SKU.
type ProductFilter struct {
	Search string
}

// ProductRepository puerto de persistencia de productos. Incluye las
// operaciones atómicas de stock: TryReserve es el único punto de
// serialización por producto (decremento condicional, nunca read-then-write).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)

	// TryReserve decrementa stock en qty solo si stock >= qty, en una única
	// operación atómica, y devuelve el producto resultante como snapshot
	// (nombre y precio al momento de la reserva). Errores:
	// ErrNotFound si el producto no existe, ErrInsufficientStock si la
	// condición no se cumple (resultado esperado, no falla del sistema).
	TryReserve(productID string, qty int64) (*entity.Product, error)

	// Release es la compensación 1:1 de un TryReserve exitoso previo.
	// Debe funcionar aunque la transacción que lo originó ya haya fallado.
	Release(productID string, qty int64) error

	// Increase suma stock (importaciones/devoluciones administrativas).
	Increase(productID string, qty int64) error
}
