package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	// Synthesis metrics
	synthesisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech_synth_requests_total",
		Help: "Total number of synthesis requests",
	}, []string{"command", "status"})

	synthesisLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "speech_synth_latency_seconds",
		Help:    "Remote synthesis latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
	}, []string{"command"})

	audioBytesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech_synth_audio_bytes_total",
		Help: "Total audio bytes written to disk",
	}, []string{"command"})

	// Error metrics
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "speech_synth_errors_total",
		Help: "Total number of errors by kind",
	}, []string{"kind"})
)

// Metrics tracks metrics for a single command invocation
type Metrics struct {
	command   string
	startTime time.Time
}

// NewMetrics creates a metrics tracker for one invocation of command
func NewMetrics(command string) *Metrics {
	return &Metrics{command: command}
}

// RecordSynthesisStart records the start of the remote call
func (m *Metrics) RecordSynthesisStart() {
	m.startTime = time.Now()
}

// RecordSynthesisEnd records the end of the remote call
func (m *Metrics) RecordSynthesisEnd(success bool) {
	if !m.startTime.IsZero() {
		synthesisLatency.WithLabelValues(m.command).Observe(time.Since(m.startTime).Seconds())
	}

	status := "success"
	if !success {
		status = "error"
	}
	synthesisRequests.WithLabelValues(m.command, status).Inc()
}

// RecordAudioBytes records audio bytes written
func (m *Metrics) RecordAudioBytes(n int) {
	audioBytesWritten.WithLabelValues(m.command).Add(float64(n))
}

// RecordError records an error of the given kind
func (m *Metrics) RecordError(kind string) {
	errorsTotal.WithLabelValues(kind).Inc()
}

// PushMetrics sends the synthesis metrics to a Prometheus Pushgateway.
// Batch jobs exit before any scrape, so push is the only way to export them.
func PushMetrics(ctx context.Context, gatewayURL, job string) error {
	pusher := push.New(gatewayURL, job).
		Collector(synthesisRequests).
		Collector(synthesisLatency).
		Collector(audioBytesWritten).
		Collector(errorsTotal)

	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
