// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/llm"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "folio"

	complexityLabel = "complexity"
	outcomeLabel    = "outcome"
	taskLabel       = "task"
	statusLabel     = "status"
)

// Recorder holds the domain collectors. It also implements llm.Observer.
type Recorder struct {
	estimates      *prometheus.CounterVec
	estimateDays   prometheus.Histogram
	adviceRequests *prometheus.CounterVec
	llmCalls       *prometheus.CounterVec
	llmLatency     *prometheus.HistogramVec
}

var _ llm.Observer = (*Recorder)(nil)

// NewRecorder creates the domain collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Number of timelines calculated, by complexity tier.",
		}, []string{complexityLabel}),
		estimateDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimate_total_days",
			Help:      "Distribution of estimated total working days.",
			Buckets:   []float64{20, 40, 60, 90, 120, 180, 250, 365},
		}),
		adviceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_requests_total",
			Help:      "Advice requests by outcome.",
		}, []string{outcomeLabel}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Text-generation calls by task and status.",
		}, []string{taskLabel, statusLabel}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_milliseconds",
			Help:      "Latency of text-generation calls.",
			Buckets:   []float64{250, 500, 1000, 2500, 5000, 10000, 20000},
		}, []string{taskLabel}),
	}
	reg.MustRegister(r.estimates, r.estimateDays, r.adviceRequests, r.llmCalls, r.llmLatency)
	return r
}

// ObserveEstimate records one calculated timeline.
func (r *Recorder) ObserveEstimate(c domain.Complexity, result domain.CalculationResult) {
	r.estimates.With(prometheus.Labels{complexityLabel: string(c)}).Inc()
	r.estimateDays.Observe(float64(result.TotalDays))
}

// ObserveAdvice records an advice request outcome such as "success",
// "rate_limited" or a failure kind.
func (r *Recorder) ObserveAdvice(outcome string) {
	r.adviceRequests.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

func (r *Recorder) OnCallComplete(event llm.LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = event.ErrorCode
	}
	r.llmCalls.With(prometheus.Labels{taskLabel: string(event.Task), statusLabel: status}).Inc()
	r.llmLatency.With(prometheus.Labels{taskLabel: string(event.Task)}).Observe(float64(event.LatencyMs))
}
