package sorted

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "zorder_sorted_inserts_total",
		Help: "The total number of elements inserted",
	}, []string{"array"})

	deletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "zorder_sorted_deletes_total",
		Help: "The total number of delete calls, by whether an element was removed",
	}, []string{"array", "result"})

	arraySize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "zorder_sorted_size",
		Help: "The number of elements currently stored",
	}, []string{"array"})

	clusterScanLength = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "zorder_sorted_cluster_scan_length",
		Help:    "The number of elements examined by a delete after the binary search",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
	}, []string{"array"})
)

// arrayMetrics holds the series of one named array. A nil *arrayMetrics is
// valid and records nothing.
type arrayMetrics struct {
	inserts prometheus.Counter
	removed prometheus.Counter
	absent  prometheus.Counter
	size    prometheus.Gauge
	scan    prometheus.Observer
}

func newArrayMetrics(name string) *arrayMetrics {
	if name == "" {
		return nil
	}

	return &arrayMetrics{
		inserts: insertsTotal.WithLabelValues(name),
		removed: deletesTotal.WithLabelValues(name, "removed"),
		absent:  deletesTotal.WithLabelValues(name, "absent"),
		size:    arraySize.WithLabelValues(name),
		scan:    clusterScanLength.WithLabelValues(name),
	}
}

func (m *arrayMetrics) inserted(size int) {
	if m == nil {
		return
	}

	m.inserts.Inc()
	m.size.Set(float64(size))
}

func (m *arrayMetrics) deleted(removed bool, size int) {
	if m == nil {
		return
	}

	if removed {
		m.removed.Inc()
	} else {
		m.absent.Inc()
	}

	m.size.Set(float64(size))
}

func (m *arrayMetrics) scanned(n int) {
	if m == nil {
		return
	}

	m.scan.Observe(float64(n))
}

func (m *arrayMetrics) resized(size int) {
	if m == nil {
		return
	}

	m.size.Set(float64(size))
}
