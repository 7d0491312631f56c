package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio registrados en el registry por defecto, expuestos
// junto con las métricas de runtime en GET /metrics.
var (
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_created_total",
		Help: "Órdenes creadas con éxito.",
	})

	ordersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_orders_rejected_total",
		Help: "Órdenes rechazadas, por motivo.",
	}, []string{"reason"})

	stockMovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_stock_movements_total",
		Help: "Movimientos administrativos de stock registrados, por tipo.",
	}, []string{"type"})

	inconsistenciesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_stock_inconsistencies_total",
		Help: "Compensaciones fallidas que dejaron stock reservado sin orden.",
	})
)
