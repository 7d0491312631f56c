package order

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ReceiptGenerator puerto del generador de tickets de venta en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}

// ReceiptUseCase genera el ticket PDF de una orden existente.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// Receipt devuelve los bytes del PDF. Mismas reglas de acceso que GetByID:
// el creador o un admin.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, orderID, userID, role string) ([]byte, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.CreatedBy != userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.generator.GenerateReceipt(ctx, o)
}
