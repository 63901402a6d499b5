package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration    prom.Histogram
	filesScanned   prom.Counter
	blocks         *prom.CounterVec
	warnings       prom.Counter
	outputs        *prom.CounterVec
	outputFailures prom.Counter
}

// NewPrometheusRecorder constructs and registers generation metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docsgen",
			Name:      "run_duration_seconds",
			Help:      "Total duration of a generation run",
			Buckets:   prom.DefBuckets,
		}),
		filesScanned: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsgen",
			Name:      "files_scanned_total",
			Help:      "Candidate source files scanned",
		}),
		blocks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsgen",
			Name:      "blocks_total",
			Help:      "Documentation blocks by kind and outcome",
		}, []string{"kind", "result"}),
		warnings: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsgen",
			Name:      "warnings_total",
			Help:      "Recoverable input warnings",
		}),
		outputs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsgen",
			Name:      "outputs_total",
			Help:      "Rendered output units by template",
		}, []string{"template"}),
		outputFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsgen",
			Name:      "output_failures_total",
			Help:      "Output units that failed to render or write",
		}),
	}
	reg.MustRegister(pr.runDuration, pr.filesScanned, pr.blocks, pr.warnings, pr.outputs, pr.outputFailures)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) { p.runDuration.Observe(d.Seconds()) }
func (p *PrometheusRecorder) IncFilesScanned(n int)              { p.filesScanned.Add(float64(n)) }
func (p *PrometheusRecorder) IncWarnings(n int)                  { p.warnings.Add(float64(n)) }
func (p *PrometheusRecorder) IncOutputFailures()                 { p.outputFailures.Inc() }

func (p *PrometheusRecorder) IncBlocks(kind string, result ResultLabel) {
	p.blocks.WithLabelValues(kind, string(result)).Inc()
}

func (p *PrometheusRecorder) IncOutputs(template string) {
	p.outputs.WithLabelValues(template).Inc()
}

// HTTPHandler returns an http.Handler serving the registry in Prometheus
// exposition format.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
