// Package metrics holds the prometheus collectors exported by the dashboard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder groups the dashboard collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	ratesRendered *prometheus.CounterVec
	ratesDuration prometheus.Histogram
	widgetErrors  *prometheus.CounterVec
}

// NewRecorder creates a Recorder backed by its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ratesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "rates_rendered_total",
			Help:      "Rate tables rendered, by origin (live or fallback)",
		}, []string{"origin"}),
		ratesDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "rates_fetch_duration_seconds",
			Help:      "Time spent retrieving and scanning the rates page",
			Buckets:   prometheus.DefBuckets,
		}),
		widgetErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "widget_errors_total",
			Help:      "Widgets left empty because their data source failed",
		}, []string{"widget"}),
	}
	r.registry.MustRegister(r.ratesRendered, r.ratesDuration, r.widgetErrors)
	return r
}

// ObserveRates records one rendered rate table.
func (r *Recorder) ObserveRates(origin string, d time.Duration) {
	if r == nil {
		return
	}
	r.ratesRendered.WithLabelValues(origin).Inc()
	r.ratesDuration.Observe(d.Seconds())
}

// WidgetFailed records a widget whose data could not be loaded.
func (r *Recorder) WidgetFailed(widget string) {
	if r == nil {
		return
	}
	r.widgetErrors.WithLabelValues(widget).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
