// Package metrics registers the storefront's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders appended to the ledger.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guswanmy_orders_created_total",
		Help: "Number of orders appended to the ledger.",
	})

	// CheckoutsCancelled counts processing flows cancelled before completion.
	CheckoutsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guswanmy_checkouts_cancelled_total",
		Help: "Number of checkout flows cancelled during processing.",
	})

	// OrderStatusUpdates counts admin status decisions by resulting status.
	OrderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guswanmy_order_status_updates_total",
		Help: "Number of admin order status updates.",
	}, []string{"status"})
)
