package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func TestOrderItem_Subtotal(t *testing.T) {
	it := entity.OrderItem{Qty: 3, Price: decimal.RequireFromString("4500.50")}
	assert.True(t, it.Subtotal().Equal(decimal.RequireFromString("13501.50")))
}

func TestOrder_CalculateTotal(t *testing.T) {
	o := entity.Order{Items: []entity.OrderItem{
		{Qty: 2, Price: decimal.NewFromInt(25000)},
		{Qty: 3, Price: decimal.NewFromInt(4500)},
	}}
	assert.True(t, o.CalculateTotal().Equal(decimal.NewFromInt(63500)))
}

func TestOrder_CalculateTotal_SinLineas(t *testing.T) {
	var o entity.Order
	assert.True(t, o.CalculateTotal().Equal(decimal.Zero))
}
