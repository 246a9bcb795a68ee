// Package metrics exposes Prometheus collectors for enrichment and preview activity.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/llm"
)

const namespace = "portfoliai"

var (
	EnrichmentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "enrichment_total", Help: "Enrichment attempts by operation and outcome."},
		[]string{"op", "outcome"},
	)
	EnrichmentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enrichment_duration_seconds",
			Help:      "Duration of enrichment calls that reached the gateway.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"op"},
	)
	LLMTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "llm_tokens_total", Help: "Tokens used by LLM completions."},
		[]string{"provider", "direction"},
	)
	LLMCostDollars = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "llm_cost_dollars_total", Help: "Estimated LLM spend in US dollars."},
		[]string{"provider"},
	)
	PreviewRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "preview_renders_total", Help: "Preview renders by theme and mode."},
		[]string{"theme", "mode"},
	)
	DocumentVersion = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "document_version", Help: "Current snapshot version of the document."},
	)
	PreviewClients = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "preview_clients", Help: "Open live preview connections."},
	)
)

// RegisterCollectors registers every collector of this package on reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(EnrichmentTotal)
	reg.MustRegister(EnrichmentDuration)
	reg.MustRegister(LLMTokens)
	reg.MustRegister(LLMCostDollars)
	reg.MustRegister(PreviewRenders)
	reg.MustRegister(DocumentVersion)
	reg.MustRegister(PreviewClients)
}

// Observer counts enrichment attempts. It implements editor.Observer.
type Observer struct{}

func (Observer) EnrichmentFinished(_ context.Context, ev editor.Event) {
	op := string(ev.Key.Kind)
	EnrichmentTotal.WithLabelValues(op, string(ev.Outcome)).Inc()
	if ev.Outcome != editor.OutcomeBusy {
		EnrichmentDuration.WithLabelValues(op).Observe(ev.Duration.Seconds())
	}
}

// RecordUsage is an llm.UsageFunc that counts tokens and estimated cost.
func RecordUsage(provider string, resp *llm.CompletionResponse) {
	LLMTokens.WithLabelValues(provider, "input").Add(float64(resp.InputTokens))
	LLMTokens.WithLabelValues(provider, "output").Add(float64(resp.OutputTokens))
	LLMCostDollars.WithLabelValues(provider).Add(llm.ResponseCost(resp))
}

var _ llm.UsageFunc = RecordUsage
