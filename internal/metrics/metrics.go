package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts catalog activity. A nil *Recorder is valid and records nothing.
type Recorder struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	sales           prometheus.Counter
	revenue         prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "Catalog store mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		persistFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_persist_failures_total",
				Help: "Failed snapshot writes by storage key",
			},
			[]string{"key"},
		),
		sales: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pos_sales_total",
				Help: "Completed POS sales",
			},
		),
		revenue: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pos_revenue_total",
				Help: "Sum of sale totals",
			},
		),
	}
	reg.MustRegister(r.mutations, r.persistFailures, r.sales, r.revenue)
	return r
}

// Mutation records one store operation.
func (r *Recorder) Mutation(operation, outcome string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(operation, outcome).Inc()
}

// PersistFailure records a failed write for key.
func (r *Recorder) PersistFailure(key string) {
	if r == nil {
		return
	}
	r.persistFailures.WithLabelValues(key).Inc()
}

// Sale records a completed sale.
func (r *Recorder) Sale(total float64) {
	if r == nil {
		return
	}
	r.sales.Inc()
	r.revenue.Add(total)
}
