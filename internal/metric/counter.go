package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type IncrementalCounter interface {
	Increment(val ...string)
}

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

func (c *Counter) Vec() *prometheus.CounterVec {
	return c.vec
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Metrics are the counters exported by the menu service.
type Metrics struct {
	DiscoveryFetches IncrementalCounter // label: result
	Clicks           IncrementalCounter // label: kind
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		DiscoveryFetches: NewCounterWithRegistry(reg,
			"navmenu_discovery_fetch_total", "Discovery menu fetches by result.", "result"),
		Clicks: NewCounterWithRegistry(reg,
			"navmenu_click_total", "Resolved menu clicks by navigation intent.", "kind"),
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
