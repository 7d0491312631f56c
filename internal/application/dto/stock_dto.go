package dto

import "time"

// StockMovementRequest body para POST /api/stock/import y /api/stock/export.
type StockMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,min=1"`
	Note      string `json:"note" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Qty       int64     `json:"qty"`
	Note      string    `json:"note,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
