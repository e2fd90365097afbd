package metrics

import (
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	movementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock",
		Name:      "movements_total",
		Help:      "Ledger movements committed, by movement type.",
	}, []string{"type"})

	reservationOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock",
		Name:      "reservation_outcomes_total",
		Help:      "Order lifecycle events handled, by event type and overall outcome.",
	}, []string{"event_type", "outcome"})

	orderEventsConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock",
		Name:      "order_events_consumed_total",
		Help:      "Order event deliveries, by routing key and disposition (ack, retry, dead_letter, invalid).",
	}, []string{"routing_key", "disposition"})

	concurrencyConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stock",
		Name:      "concurrency_conflicts_total",
		Help:      "Stock level saves rejected by the version check or unique key, by operation.",
	}, []string{"operation"})
)

// ObserveMovements counts committed movements. Nil entries are ignored.
func ObserveMovements(movements ...*model.Movement) {
	for _, m := range movements {
		if m == nil {
			continue
		}
		movementsTotal.WithLabelValues(string(m.Type)).Inc()
	}
}

func ObserveReservation(result *model.ReservationResult) {
	if result == nil {
		return
	}
	reservationOutcomesTotal.WithLabelValues(string(result.EventType), string(result.Outcome)).Inc()
}

func ObserveDelivery(routingKey, disposition string) {
	orderEventsConsumedTotal.WithLabelValues(routingKey, disposition).Inc()
}

func ObserveConflict(operation string) {
	concurrencyConflictsTotal.WithLabelValues(operation).Inc()
}
