package observability

import (
	"context"
	"net/http"

	"github.com/honeynil/coffee-token-inspector/internal/config"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(serviceName string, cfg *config.Config) (func(context.Context) error, http.Handler) {
	observability.InitLogger(cfg.LogLevel)
	observability.InitMetrics(prometheus.DefaultRegisterer)
	tracerShutdown := observability.InitTracing(serviceName, cfg.TracingEndpoint)
	return tracerShutdown, promhttp.Handler()
}
