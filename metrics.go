package lightcycle

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes the state of a Ring to Prometheus. Feed it from a ring by
// registering Metrics.Observer with Ring.Observe, and register the Metrics
// value itself with a prometheus.Registerer.
type Metrics struct {
	nodes        prometheus.Gauge
	changesTotal *prometheus.CounterVec

	// Node ids seen in the previous notification; used to classify changes
	// as adds or removes.
	lastNodes map[string]struct{}
}

var _ prometheus.Collector = (*Metrics)(nil)

// NewMetrics creates Metrics to expose the state of a single Ring. A
// Metrics must not be fed by more than one ring.
func NewMetrics() *Metrics {
	var m Metrics

	m.nodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lightcycle_ring_nodes",
		Help: "Current number of nodes registered on the ring.",
	})
	m.changesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lightcycle_ring_changes_total",
		Help: "Total number of ring membership changes observed. event will be one of: add, remove.",
	}, []string{"event"})

	m.lastNodes = make(map[string]struct{})
	return &m
}

// Observer returns the Observer which feeds m.
func (m *Metrics) Observer() Observer {
	return FuncObserver(m.ringChanged)
}

func (m *Metrics) ringChanged(nodes []Node) {
	next := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		next[n.ID()] = struct{}{}
		if _, ok := m.lastNodes[n.ID()]; !ok {
			m.changesTotal.WithLabelValues("add").Inc()
		}
	}
	for id := range m.lastNodes {
		if _, ok := next[id]; !ok {
			m.changesTotal.WithLabelValues("remove").Inc()
		}
	}

	m.lastNodes = next
	m.nodes.Set(float64(len(nodes)))
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.nodes.Describe(ch)
	m.changesTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.nodes.Collect(ch)
	m.changesTotal.Collect(ch)
}
