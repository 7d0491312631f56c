package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Cabecera en orders, líneas en order_items con posición explícita para
// conservar el orden de la petición.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera y las líneas de la orden.
// Para que sea atómico, pasar un Querier atado a una transacción (TxRunner).
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, total, created_by, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Total, order.CreatedBy, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, qty, price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			uuid.New().String(), order.ID, it.ProductID, it.Name, it.Qty, it.Price, i,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden completa (cabecera + líneas); nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT id, total, created_by, created_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Total, &o.CreatedBy, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// List lista órdenes en orden de inserción, opcionalmente filtradas por
// creador, y devuelve también el total sin paginar.
func (r *OrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	where := ""
	args := []any{}
	if filter.CreatedBy != "" {
		where = ` WHERE created_by = $1`
		args = append(args, filter.CreatedBy)
	}

	var total int
	countQuery := `SELECT count(*) FROM orders` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	pos := len(args) + 1
	query := `SELECT id, total, created_by, created_at FROM orders` + where +
		fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Total, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) > 0 {
		items, err := r.loadItems(ids)
		if err != nil {
			return nil, 0, err
		}
		for _, o := range list {
			o.Items = items[o.ID]
		}
	}
	return list, total, nil
}

// loadItems carga las líneas de un conjunto de órdenes en una sola consulta.
func (r *OrderRepo) loadItems(orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT order_id, product_id, name, qty, price
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, position`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	items := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Qty, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], it)
	}
	return items, rows.Err()
}
