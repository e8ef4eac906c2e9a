package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RentalTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_rental_transitions_total",
			Help: "Number of committed rental status transitions",
		},
		[]string{"from", "to"},
	)

	RentalTransitionRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_rental_transition_rejections_total",
			Help: "Number of rental transitions refused, by error kind",
		},
		[]string{"kind"},
	)

	EquipmentStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_equipment_status_changes_total",
			Help: "Number of equipment availability changes",
		},
		[]string{"status", "source"},
	)

	GatewayCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_gateway_callbacks_total",
			Help: "Number of payment gateway callbacks, by outcome and result",
		},
		[]string{"outcome", "result"},
	)

	PaymentsInitiated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_payments_initiated_total",
			Help: "Number of payments initiated, by method",
		},
		[]string{"method"},
	)

	StalePendingPayments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "go4rent_stale_pending_payments",
			Help: "Payments still pending beyond the configured threshold at the last check",
		},
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "go4rent_notifications_total",
			Help: "Notification deliveries, by channel and result",
		},
		[]string{"channel", "result"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "go4rent_operation_duration_seconds",
			Help:    "Time taken by coordinator operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RentalTransitions,
			RentalTransitionRejections,
			EquipmentStatusChanges,
			GatewayCallbacks,
			PaymentsInitiated,
			StalePendingPayments,
			NotificationsSent,
			OperationDuration,
		)
	})
}
