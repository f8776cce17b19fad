package graphbase

import "github.com/prometheus/client_golang/prometheus"

// Label values used by Metrics.
const (
	algorithmDijkstra = "dijkstra"
	algorithmAStar    = "astar"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics groups the Prometheus collectors a Graph reports into.
// All methods are safe on a nil receiver.
type Metrics struct {
	searches       *prometheus.CounterVec
	expanded       *prometheus.HistogramVec
	nodeInsertions *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plangraph",
			Name:      "searches_total",
			Help:      "Shortest-path searches by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "plangraph",
			Name:      "search_expanded_nodes",
			Help:      "Nodes moved to the closed set per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"algorithm"}),
		nodeInsertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plangraph",
			Name:      "node_insertions_total",
			Help:      "Node insertions by outcome; failures were rolled back.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.searches, m.expanded, m.nodeInsertions)
	}

	return m
}

func (m *Metrics) observeSearch(algorithm string, expanded int, err error) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(algorithm, outcome(err)).Inc()
	m.expanded.WithLabelValues(algorithm).Observe(float64(expanded))
}

func (m *Metrics) observeInsertion(err error) {
	if m == nil {
		return
	}
	m.nodeInsertions.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}

	return outcomeSuccess
}
