// Package metrics bridges registry timers and benchmark reports to
// Prometheus. The core packages never touch it; import it only when a
// scrape endpoint is wanted.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/psantana5/devtimer/pkg/bench"
	"github.com/psantana5/devtimer/pkg/timer"
)

// Exporter publishes elapsed times and benchmark reductions as gauges.
type Exporter struct {
	registry *timer.Registry

	elapsed    *prometheus.GaugeVec
	fastest    *prometheus.GaugeVec
	slowest    *prometheus.GaugeVec
	average    *prometheus.GaugeVec
	iterations *prometheus.GaugeVec
}

// NewExporter creates an Exporter for reg and registers its collectors with
// r. A nil r means the default Prometheus registerer.
func NewExporter(reg *timer.Registry, r prometheus.Registerer) *Exporter {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	e := &Exporter{
		registry: reg,
		elapsed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devtimer_elapsed_nanoseconds",
				Help: "Elapsed nanoseconds of completed timers by tag",
			},
			[]string{"tag"},
		),
		fastest: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devtimer_benchmark_fastest_nanoseconds",
				Help: "Fastest iteration of a benchmark run",
			},
			[]string{"name"},
		),
		slowest: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devtimer_benchmark_slowest_nanoseconds",
				Help: "Slowest iteration of a benchmark run",
			},
			[]string{"name"},
		),
		average: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devtimer_benchmark_average_nanoseconds",
				Help: "Average iteration of a benchmark run (truncating mean)",
			},
			[]string{"name"},
		),
		iterations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "devtimer_benchmark_iterations",
				Help: "Iteration count of a benchmark run",
			},
			[]string{"name"},
		),
	}

	r.MustRegister(e.elapsed, e.fastest, e.slowest, e.average, e.iterations)

	return e
}

// Sync snapshots every completed registry entry into the elapsed gauge.
// Incomplete entries are skipped until they finish.
func (e *Exporter) Sync() {
	for tag, t := range e.registry.Entries() {
		if nanos, ok := t.ElapsedNanos(); ok {
			e.elapsed.WithLabelValues(tag).Set(float64(nanos))
		}
	}
}

// ObserveReport records the reduction of a finished benchmark run under
// name.
func (e *Exporter) ObserveReport(name string, rep *bench.Report) {
	e.fastest.WithLabelValues(name).Set(float64(rep.Fastest().Nanoseconds()))
	e.slowest.WithLabelValues(name).Set(float64(rep.Slowest().Nanoseconds()))
	e.average.WithLabelValues(name).Set(float64(rep.Average().Nanoseconds()))
	e.iterations.WithLabelValues(name).Set(float64(rep.Iterations()))
}

// Handler returns the Prometheus scrape handler for the default registry.
// Exporters registered elsewhere need their own handler.
func (e *Exporter) Handler() http.Handler {
	return promhttp.Handler()
}
