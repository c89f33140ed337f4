package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.Mutation("add_product", "ok")
	r.Mutation("add_product", "ok")
	r.Mutation("update_product", "not_found")
	r.PersistFailure("kh_products")
	r.Sale(40)
	r.Sale(2.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues("add_product", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.mutations.WithLabelValues("update_product", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.persistFailures.WithLabelValues("kh_products")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.sales))
	assert.Equal(t, 42.5, testutil.ToFloat64(r.revenue))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Mutation("x", "ok")
		r.PersistFailure("k")
		r.Sale(1)
	})
}
