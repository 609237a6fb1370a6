package metrics

import (
	"time"

	"parley/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	messagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_messages_handled_total",
			Help: "Total number of messages handled by the poller",
		},
		[]string{"status"},
	)

	messagesIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_messages_ignored_total",
			Help: "Total number of messages ignored",
		},
		[]string{"reason"},
	)

	commandsUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_commands_used_total",
			Help: "Total number of commands used",
		},
		[]string{"command"},
	)

	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_messages_sent_total",
			Help: "Total number of message chunks sent by the diplomat",
		},
		[]string{"mode"},
	)

	renderChunks = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parley_render_chunks_per_reply",
			Help:    "Number of chunks a single reply was rendered into",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	renderAnomalies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_render_anomalies_total",
			Help: "Recoverable rendering anomalies (over-budget restored spans, panics)",
		},
		[]string{"kind"},
	)

	tokenUsage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_token_usage_total",
			Help: "Total number of tokens used",
		},
		[]string{"model"},
	)

	costUsage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_cost_usage_total",
			Help: "Total cost incurred",
		},
		[]string{"model"},
	)

	dialDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parley_ai_request_duration_seconds",
			Help:    "Duration of AI provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "model"},
	)
)

func NewMetricsService(log *tracing.Logger) *MetricsService {
	prometheus.MustRegister(
		messagesHandled,
		messagesIgnored,
		commandsUsed,
		messagesSent,
		renderChunks,
		renderAnomalies,
		tokenUsage,
		costUsage,
		dialDuration,
	)

	log.I("Metrics service initialized")
	return &MetricsService{log: log}
}

func (x *MetricsService) RecordMessageHandled(status string) {
	messagesHandled.WithLabelValues(status).Inc()
}

func (x *MetricsService) RecordMessageIgnored(reason string) {
	messagesIgnored.WithLabelValues(reason).Inc()
}

func (x *MetricsService) RecordCommandUsed(command string) {
	commandsUsed.WithLabelValues(command).Inc()
}

func (x *MetricsService) RecordMessageSent(mode string) {
	messagesSent.WithLabelValues(mode).Inc()
}

func (x *MetricsService) RecordRenderChunks(count int) {
	renderChunks.Observe(float64(count))
}

func (x *MetricsService) RecordRenderAnomaly(kind string) {
	renderAnomalies.WithLabelValues(kind).Inc()
}

func (x *MetricsService) RecordTokenUsage(model string, tokens int) {
	tokenUsage.WithLabelValues(model).Add(float64(tokens))
}

func (x *MetricsService) RecordCostUsage(model string, cost decimal.Decimal) {
	costUsage.WithLabelValues(model).Add(cost.InexactFloat64())
}

func (x *MetricsService) ObserveDialDuration(provider, model string, elapsed time.Duration) {
	dialDuration.WithLabelValues(provider, model).Observe(elapsed.Seconds())
}
