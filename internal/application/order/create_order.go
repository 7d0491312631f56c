package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// CreateOrderUseCase convierte una petición multi-línea en reservas atómicas
// de stock, una orden inmutable y un movimiento "export" por línea.
//
// Estrategia (saga con compensación):
//  1. Reserva línea por línea con TryReserve (decremento condicional atómico).
//     Si la línea k falla, libera las líneas 1..k-1 y reporta la causa de k.
//  2. Con todas las líneas reservadas, persiste movimientos + orden en UNA
//     transacción de BD. Si esa transacción falla, compensa todas las reservas;
//     si además la compensación falla, el estado queda inconsistente y se
//     reporta como tal (nunca se silencia).
//
// No es idempotente: dos envíos idénticos son dos órdenes y dos descuentos.
type CreateOrderUseCase struct {
	stock    StockStore
	txRunner TxRunner
	log      *logger.Logger
}

// NewCreateOrderUseCase construye el coordinador.
func NewCreateOrderUseCase(stock StockStore, txRunner TxRunner, log *logger.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{stock: stock, txRunner: txRunner, log: log}
}

// CreateOrder ejecuta la transacción completa. El resultado es todo-o-nada
// desde la perspectiva del caller: o existe la orden con su ledger, o el
// stock queda como estaba.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	// El validador HTTP ya filtra esto; se defiende igual aquí.
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	orderID := uuid.New().String()
	now := time.Now()

	// Fase 1: reservas en el orden de la petición. Sin transacción ni lock en
	// proceso: cada TryReserve es un punto de serialización independiente.
	reserved := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, err := uc.stock.TryReserve(it.ProductID, it.Qty)
		if err != nil {
			// Falla en la línea k: revertir 1..k-1 y reportar la causa de k.
			if cerr := uc.compensate(orderID, reserved); cerr != nil {
				return nil, domain.ErrInconsistent
			}
			return nil, err
		}
		reserved = append(reserved, entity.OrderItem{
			ProductID: p.ID,
			Name:      p.Name, // snapshot
			Qty:       it.Qty,
			Price:     p.Price, // snapshot
		})
	}

	ord := &entity.Order{
		ID:        orderID,
		Items:     reserved,
		CreatedBy: userID,
		CreatedAt: now,
	}
	ord.Total = ord.CalculateTotal()

	// Fase 2: un movimiento "export" por línea + la orden, en una sola
	// transacción. El ledger queda escrito antes de reportar éxito.
	err := uc.txRunner.RunOrder(ctx, func(
		movRepo repository.StockMovementRepository,
		orderRepo repository.OrderRepository,
	) error {
		for _, li := range reserved {
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				Type:      entity.MovementTypeExport,
				ProductID: li.ProductID,
				Quantity:  li.Qty,
				Note:      "order " + orderID,
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return orderRepo.Create(ord)
	})
	if err != nil {
		// Reservas aplicadas sin orden: compensar. Si la compensación también
		// falla, el estado es inconsistente y requiere reconciliación manual.
		if cerr := uc.compensate(orderID, reserved); cerr != nil {
			return nil, domain.ErrInconsistent
		}
		uc.log.Warn().Err(err).Str("order_id", orderID).
			Msg("orden no persistida; reservas compensadas, reintento seguro")
		return nil, fmt.Errorf("persistir orden: %w", err)
	}

	uc.log.Info().Str("order_id", orderID).Str("user_id", userID).
		Int("lines", len(reserved)).Str("total", ord.Total.String()).
		Msg("orden creada")
	return toOrderResponse(ord), nil
}

// compensate libera cada reserva ya aplicada. No es cancelable: debe correr
// completa aunque el caller se haya desconectado, por eso no recibe contexto.
// Devuelve el primer error de Release; cada falla se loggea con la máxima
// severidad disponible porque deja stock retenido sin orden.
func (uc *CreateOrderUseCase) compensate(orderID string, items []entity.OrderItem) error {
	var firstErr error
	for _, li := range items {
		if err := uc.stock.Release(li.ProductID, li.Qty); err != nil {
			uc.log.Error().Err(err).
				Bool("inconsistent", true).
				Str("order_id", orderID).
				Str("product_id", li.ProductID).
				Int64("qty", li.Qty).
				Msg("compensación fallida: stock reservado sin orden, requiere reconciliación manual")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt,
	}
}
