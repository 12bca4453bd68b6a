package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "appointment_finder"

// Recorder tracks per-location scheduling query outcomes.
type Recorder struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	searches *prometheus.CounterVec
}

// NewRecorder registers the recorder's collectors on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_queries_total",
			Help:      "Next-available queries by outcome (scheduled, empty, failed).",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "location_query_duration_seconds",
			Help:      "Latency of next-available queries against the scheduling service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Earliest-appointment searches by result (available, unavailable, error).",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{r.queries, r.duration, r.searches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveLocationQuery(outcome string, elapsed time.Duration) {
	r.queries.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveSearch(result string) {
	r.searches.WithLabelValues(result).Inc()
}
