package order

import (
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// QueryUseCase listados y consulta de órdenes. Solo lectura, sin mutaciones.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// List lista órdenes del actor indicado, paginadas en orden de inserción.
// Un admin puede listar las de otro usuario pasando su ID en el filtro.
func (uc *QueryUseCase) List(createdBy string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.Normalize()
	orders, total, err := uc.orderRepo.List(repository.OrderFilter{CreatedBy: createdBy}, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Limit: page.Limit, Total: total},
	}, nil
}

// GetByID devuelve una orden. Un cajero solo puede ver las propias;
// un admin puede ver cualquiera.
func (uc *QueryUseCase) GetByID(orderID, userID, role string) (*dto.OrderResponse, error) {
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
	return toOrderResponse(o), nil
}
