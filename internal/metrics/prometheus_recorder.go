package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "patterns"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry    *prom.Registry
	runDuration *prom.HistogramVec
	runResults  *prom.CounterVec
	events      *prom.CounterVec
}

// NewPrometheusRecorder constructs the run metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of individual scenario runs",
			Buckets:   prom.DefBuckets,
		}, []string{"scenario"}),
		runResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_results_total",
			Help:      "Scenario run counts by outcome",
		}, []string{"scenario", "result"}),
		events: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Transcript events emitted per scenario",
		}, []string{"scenario"}),
	}
	reg.MustRegister(pr.runDuration, pr.runResults, pr.events)
	return pr
}

// Registry returns the registry the metrics were registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveRunDuration(scenario string, d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.WithLabelValues(scenario).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunResult(scenario string, result ResultLabel) {
	if p == nil || p.runResults == nil {
		return
	}
	p.runResults.WithLabelValues(scenario, string(result)).Inc()
}

func (p *PrometheusRecorder) AddEvents(scenario string, n int) {
	if p == nil || p.events == nil || n <= 0 {
		return
	}
	p.events.WithLabelValues(scenario).Add(float64(n))
}

// Snapshot flattens counter values into "name{label=value,...}" keys.
// Histograms report their sample count.
func (p *PrometheusRecorder) Snapshot() (map[string]float64, error) {
	families, err := p.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				key += "{"
				for i, lp := range labels {
					if i > 0 {
						key += ","
					}
					key += lp.GetName() + "=" + lp.GetValue()
				}
				key += "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}
