package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// StockUseCase movimientos administrativos de stock (import/export, admin
// only) y listado del ledger. Cada cambio de stock escribe exactamente una
// entrada en el ledger, dentro de la misma transacción.
type StockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// Import suma stock y registra el movimiento "import" en la misma transacción.
func (uc *StockUseCase) Import(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	mov := newMovement(entity.MovementTypeImport, userID, in)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Increase(in.ProductID, in.Qty); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Export descuenta stock con el decremento condicional atómico y registra el
// movimiento "export" en la misma transacción. Devuelve ErrInsufficientStock
// si no hay unidades suficientes (resultado esperado, no falla del sistema).
func (uc *StockUseCase) Export(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	mov := newMovement(entity.MovementTypeExport, userID, in)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if _, err := productRepo.TryReserve(in.ProductID, in.Qty); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ListMovements lista el ledger con filtros por producto, tipo y rango de fechas.
func (uc *StockUseCase) ListMovements(filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	if filter.Type != "" && filter.Type != entity.MovementTypeImport && filter.Type != entity.MovementTypeExport {
		return nil, domain.ErrInvalidInput
	}
	page.Normalize()
	movements, total, err := uc.movementRepo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

func newMovement(movType, userID string, in dto.StockMovementRequest) *entity.StockMovement {
	return &entity.StockMovement{
		ID:        uuid.New().String(),
		Type:      movType,
		ProductID: in.ProductID,
		Quantity:  in.Qty,
		Note:      in.Note,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		ProductID: m.ProductID,
		Qty:       m.Quantity,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
