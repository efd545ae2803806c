package bootstrap

import (
	"testing"

	"travelshare/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestTracingConfig(t *testing.T) {
	cfg := &config.Config{
		Env:                 "staging",
		TracingEnabled:      true,
		TracingExporter:     "otlp",
		OTLPEndpoint:        "collector:4318",
		TracingSamplerRatio: 0.25,
	}

	tc := TracingConfig(cfg)
	assert.Equal(t, "travelshare-api", tc.ServiceName)
	assert.Equal(t, "staging", tc.Environment)
	assert.True(t, tc.Enabled)
	assert.Equal(t, "otlp", tc.Exporter)
	assert.Equal(t, "collector:4318", tc.OTLPEndpoint)
	assert.InDelta(t, 0.25, tc.SamplerRatio, 1e-9)
}
