package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns the process metrics registry with the standard Go and
// process collectors installed.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// CommandMetrics counts gateway command dispatches by provider, command and
// outcome. A nil receiver is a no-op so the command layer never depends on
// metrics being wired.
type CommandMetrics struct {
	commands *prometheus.CounterVec
}

func NewCommandMetrics(reg *prometheus.Registry) *CommandMetrics {
	m := &CommandMetrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_commands_total",
			Help: "Gateway commands dispatched through the vault.",
		}, []string{"provider", "command", "status"}),
	}
	reg.MustRegister(m.commands)
	return m
}

func (m *CommandMetrics) ObserveCommand(provider, command string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.commands.WithLabelValues(provider, command, status).Inc()
}

// TokenMetrics counts stored-token lookups by result.
type TokenMetrics struct {
	lookups *prometheus.CounterVec
}

func NewTokenMetrics(reg *prometheus.Registry) *TokenMetrics {
	m := &TokenMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_token_lookups_total",
			Help: "Stored-token lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.lookups)
	return m
}

func (m *TokenMetrics) ObserveLookup(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}

// Lookup results.
const (
	LookupHit    = "hit"
	LookupMiss   = "miss"
	LookupCached = "cached"
	LookupError  = "error"
)
