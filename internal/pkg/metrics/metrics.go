package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "starknet_balance_checker"

var (
	// RPCRequests counts Starknet JSON-RPC calls by method and outcome.
	RPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "Starknet JSON-RPC requests by method and status.",
	}, []string{"method", "status"})

	// RPCDuration tracks Starknet JSON-RPC latency.
	RPCDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_request_duration_seconds",
		Help:      "Starknet JSON-RPC request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// ToolCalls counts tool invocations (MCP and REST) by tool and outcome.
	ToolCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_calls_total",
		Help:      "Tool invocations by tool name and status.",
	}, []string{"tool", "status"})

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors with the default registry once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RPCRequests, RPCDuration, ToolCalls)
	})
}

func status(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

// ObserveRPC records one finished RPC call.
func ObserveRPC(method string, start time.Time, err error) {
	RPCRequests.WithLabelValues(method, status(err != nil)).Inc()
	RPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// ObserveToolCall records one finished tool invocation.
func ObserveToolCall(tool string, failed bool) {
	ToolCalls.WithLabelValues(tool, status(failed)).Inc()
}
