// Package metrics records computation metrics in Prometheus form and reads
// runtime memory statistics.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "billionfib"

// Recorder collects billionfib metrics on its own registry, so several
// recorders (one per test, say) never collide. It implements
// karatsuba.Observer.
type Recorder struct {
	registry *prometheus.Registry

	baseMuls   prometheus.Counter
	splitMuls  prometheus.Counter
	duration   prometheus.Histogram
	resultBits prometheus.Gauge
	requests   prometheus.Counter

	baseCount  atomic.Uint64
	splitCount atomic.Uint64
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the billionfib metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	mem := NewMemoryCollector()

	muls := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "multiplications_total",
		Help:      "Karatsuba multiplication nodes, by path (base or split).",
	}, []string{"path"})

	r := &Recorder{
		registry:  reg,
		baseMuls:  muls.WithLabelValues("base"),
		splitMuls: muls.WithLabelValues("split"),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Wall-clock time to compute F(n).",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
		}),
		resultBits: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_bits",
			Help:      "Bit length of the last computed result.",
		}),
		requests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Fibonacci computations completed.",
		}),
	}
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects.",
	}, func() float64 { return float64(mem.Snapshot().HeapAlloc) })
	return r
}

// OnBase counts a product delegated to the base multiplier.
func (r *Recorder) OnBase(int) {
	r.baseMuls.Inc()
	r.baseCount.Add(1)
}

// OnSplit counts a Karatsuba split.
func (r *Recorder) OnSplit(int) {
	r.splitMuls.Inc()
	r.splitCount.Add(1)
}

// ObserveComputation records a finished F(n) computation.
func (r *Recorder) ObserveComputation(elapsed time.Duration, bits int) {
	r.requests.Inc()
	r.duration.Observe(elapsed.Seconds())
	r.resultBits.Set(float64(bits))
}

// Multiplications returns the base and split counts recorded so far.
func (r *Recorder) Multiplications() (base, split uint64) {
	return r.baseCount.Load(), r.splitCount.Load()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
