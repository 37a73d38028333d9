// Package metrics exposes authentication counters to Prometheus.
package metrics

import (
	"net/http"

	"arena/internal/domain/entity"
	"arena/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates a dedicated registry with the standard Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

// NewHandler serves the registry in the Prometheus exposition format.
func NewHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

type authMetrics struct {
	federationTotal *prometheus.CounterVec
	loginTotal      *prometheus.CounterVec
	totpTotal       *prometheus.CounterVec
}

// NewAuthMetrics creates and registers the authentication counters.
func NewAuthMetrics(registry *prometheus.Registry) service.AuthMetrics {
	m := &authMetrics{
		federationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arena_oauth_callbacks_total",
				Help: "OAuth callbacks by provider and result",
			},
			[]string{"provider", "result"},
		),
		loginTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arena_logins_total",
				Help: "Session logins by result",
			},
			[]string{"result"},
		),
		totpTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arena_totp_operations_total",
				Help: "TOTP operations by operation and result",
			},
			[]string{"operation", "result"},
		),
	}

	registry.MustRegister(m.federationTotal, m.loginTotal, m.totpTotal)

	return m
}

func (m *authMetrics) ObserveFederation(source entity.AuthSource, result entity.ResultCode) {
	m.federationTotal.WithLabelValues(source.String(), string(result)).Inc()
}

func (m *authMetrics) ObserveLogin(result entity.ResultCode) {
	m.loginTotal.WithLabelValues(string(result)).Inc()
}

func (m *authMetrics) ObserveTOTP(operation string, result entity.ResultCode) {
	m.totpTotal.WithLabelValues(operation, string(result)).Inc()
}
