package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "borsabot_updates_total",
		Help: "Webhook updates processed, by update kind.",
	}, []string{"kind"})

	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "borsabot_commands_total",
		Help: "Dispatched bot commands.",
	}, []string{"command"})

	BroadcastSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "borsabot_broadcast_sends_total",
		Help: "Broadcast deliveries, by outcome.",
	}, []string{"result"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "borsabot_http_requests_total",
		Help: "HTTP requests served, by method, path and status.",
	}, []string{"method", "path", "status"})
)
