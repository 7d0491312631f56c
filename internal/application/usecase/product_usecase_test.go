package usecase_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// memProductRepo fake mínimo: mapa por ID con unicidad de SKU.
type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	snapshot := *p
	return &snapshot, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.products {
		snapshot := *p
		list = append(list, &snapshot)
	}
	return list, len(list), nil
}

func (r *memProductRepo) TryReserve(productID string, qty int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock < qty {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock -= qty
	snapshot := *p
	return &snapshot, nil
}

func (r *memProductRepo) Release(productID string, qty int64) error {
	return r.Increase(productID, qty)
}

func (r *memProductRepo) Increase(productID string, qty int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += qty
	return nil
}

func cafeRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:   "CAFE-01",
		Name:  "Café 500g",
		Price: decimal.NewFromInt(25000),
		Stock: 10,
		Unit:  "unidad",
	}
}

func TestProductCreate_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(cafeRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "CAFE-01", out.SKU)
	assert.EqualValues(t, 10, out.Stock)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(cafeRequest())
	require.NoError(t, err)
	_, err = uc.Create(cafeRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	casos := []dto.CreateProductRequest{
		{Name: "Sin SKU", Unit: "unidad"},
		{SKU: "X-01", Unit: "unidad"},
		{SKU: "X-01", Name: "Sin unidad"},
		{SKU: "X-01", Name: "Precio negativo", Unit: "unidad", Price: decimal.NewFromInt(-1)},
		{SKU: "X-01", Name: "Stock negativo", Unit: "unidad", Stock: -5},
	}
	for _, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductUpdate_NuncaTocaElStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(cafeRequest())
	require.NoError(t, err)

	nuevoNombre := "Café premium 500g"
	nuevoPrecio := decimal.NewFromInt(28000)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  &nuevoNombre,
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, nuevoNombre, out.Name)
	assert.True(t, out.Price.Equal(nuevoPrecio))
	assert.EqualValues(t, 10, out.Stock, "el stock solo cambia vía movimientos u órdenes")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	nombre := "x"
	out, err := uc.Update("p-nada", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente devuelve nil sin error")
}

func TestProductList_Pagina(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(cafeRequest())
	require.NoError(t, err)

	out, err := uc.List("", dto.PageRequest{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Page)
	assert.Equal(t, dto.DefaultPageSize, out.Page.Limit)
	assert.Equal(t, 1, out.Page.Total)
}
