package observability

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInitMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitMetrics(reg)

	TokenDecodes.WithLabelValues("payload", "ok").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(TokenDecodes, "token_decodes_total"))
	assert.Panics(t, func() { InitMetrics(reg) })
}
