// Package metrics exposes Prometheus collectors for the background work.
package metrics

import (
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
)

var _ commands.SyncMetrics = &Sync{}

// Sync counts what the digital-menu reconciler does.
type Sync struct {
	imported     prometheus.Counter
	failed       prometheus.Counter
	propagated   prometheus.Counter
	pollFailures prometheus.Counter
	pollDuration prometheus.Histogram
}

// NewSync creates the collectors and registers them with reg.
func NewSync(reg prometheus.Registerer) (*Sync, error) {
	m := &Sync{
		imported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "restaurant",
			Subsystem: "digital_menu_sync",
			Name:      "orders_imported_total",
			Help:      "Digital menu orders turned into POS orders.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "restaurant",
			Subsystem: "digital_menu_sync",
			Name:      "orders_failed_total",
			Help:      "Digital menu orders that could not be imported or flagged.",
		}),
		propagated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "restaurant",
			Subsystem: "digital_menu_sync",
			Name:      "statuses_propagated_total",
			Help:      "Status changes pushed onto POS order items.",
		}),
		pollFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "restaurant",
			Subsystem: "digital_menu_sync",
			Name:      "poll_failures_total",
			Help:      "Poll cycles aborted by a feed or storage error.",
		}),
		pollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "restaurant",
			Subsystem: "digital_menu_sync",
			Name:      "poll_duration_seconds",
			Help:      "Duration of one poll cycle.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
	}

	for _, c := range []prometheus.Collector{m.imported, m.failed, m.propagated, m.pollFailures, m.pollDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Sync) OrderImported() {
	m.imported.Inc()
}

func (m *Sync) OrderFailed() {
	m.failed.Inc()
}

func (m *Sync) StatusPropagated() {
	m.propagated.Inc()
}

func (m *Sync) PollFailed() {
	m.pollFailures.Inc()
}

func (m *Sync) ObservePoll(d time.Duration) {
	m.pollDuration.Observe(d.Seconds())
}
