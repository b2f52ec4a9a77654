// Package metrics holds the Prometheus collectors for the board.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/anonboard-backend/internal/domain"
)

const namespace = "anonboard"

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ResCreated       prometheus.Counter
	TopicsCreated    *prometheus.CounterVec
	VotesCast        *prometheus.CounterVec
	RateLimited      *prometheus.CounterVec
	PublishFailures  prometheus.Counter
	TopicsClosed     prometheus.Counter
	HTTPRequestTotal *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ResCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "res_created_total",
			Help:      "Total number of normal reses posted",
		}),
		TopicsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topics_created_total",
			Help:      "Total number of topics created, by topic type",
		}, []string{"type"}),
		VotesCast: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Total number of accepted votes, by direction",
		}, []string{"type"}),
		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Posting attempts denied by a cooldown gate, by action",
		}, []string{"action"}),
		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "res_added_publish_failures_total",
			Help:      "ResAdded events that could not be published after commit",
		}),
		TopicsClosed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topics_closed_total",
			Help:      "Topics closed for inactivity",
		}),
		HTTPRequestTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status",
		}, []string{"method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *Metrics) IncResCreated() {
	m.ResCreated.Inc()
}

func (m *Metrics) IncTopicCreated(t domain.TopicType) {
	m.TopicsCreated.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) IncVote(v domain.VoteType) {
	m.VotesCast.WithLabelValues(v.String()).Inc()
}

func (m *Metrics) IncRateLimited(a domain.RateLimitedAction) {
	m.RateLimited.WithLabelValues(a.String()).Inc()
}

func (m *Metrics) IncPublishFailure() {
	m.PublishFailures.Inc()
}

func (m *Metrics) AddTopicsClosed(n int64) {
	m.TopicsClosed.Add(float64(n))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method string, status int, d time.Duration) {
	m.HTTPRequestTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler exposes the collectors registered in g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
