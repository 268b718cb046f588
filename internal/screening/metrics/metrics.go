package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for sanctions searches.
type Metrics struct {
	// Searches by outcome: "match", "no_match", "parse_error", "stream_error",
	// "source_error", "cancelled", "internal_error"
	SearchOutcome *prometheus.CounterVec

	// Matches by the rule that accepted them
	RuleMatches *prometheus.CounterVec

	// Entries read per search
	EntriesScanned prometheus.Counter

	// Full pass latency
	SearchLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		SearchOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdnscreen_search_outcomes_total",
			Help: "Total sanctions searches by outcome",
		}, []string{"outcome"}),

		RuleMatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdnscreen_rule_matches_total",
			Help: "Total matched records by deciding rule",
		}, []string{"rule"}),

		EntriesScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "sdnscreen_entries_scanned_total",
			Help: "Total sdnEntry fragments read across all searches",
		}),

		SearchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sdnscreen_search_duration_seconds",
			Help:    "Duration of a full pass over the SDN list",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementOutcome records a search outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.SearchOutcome.WithLabelValues(outcome).Inc()
	}
}

// AddRuleMatches records n matches decided by rule.
func (m *Metrics) AddRuleMatches(rule string, n int) {
	if m != nil && n > 0 {
		m.RuleMatches.WithLabelValues(rule).Add(float64(n))
	}
}

// AddEntriesScanned records fragments read by one search.
func (m *Metrics) AddEntriesScanned(n int) {
	if m != nil {
		m.EntriesScanned.Add(float64(n))
	}
}

// ObserveSearchLatency records the duration of one search.
func (m *Metrics) ObserveSearchLatency(d time.Duration) {
	if m != nil {
		m.SearchLatency.Observe(d.Seconds())
	}
}
