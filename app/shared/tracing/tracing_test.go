package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/logging"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestLogExporter_WritesFinishedSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, config.LogConfig{Level: "debug", Format: "json"})

	tp := NewProvider(config.TracingConfig{Enabled: true, SampleRate: 1}, config.ServiceConfig{Name: "test"}, NewLogExporter(logger))

	_, span := tp.Tracer("test").Start(context.Background(), "scoreboard.Update")
	span.SetAttributes(attribute.Int("player", 2))
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"msg":"Span finished"`)
	assert.Contains(t, out, `"span":"scoreboard.Update"`)
	assert.Contains(t, out, `"player":"2"`)
}

func TestLogExporter_ZeroSampleRateDropsRootSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, config.LogConfig{Level: "debug", Format: "json"})

	tp := NewProvider(config.TracingConfig{Enabled: true, SampleRate: 0}, config.ServiceConfig{Name: "test"}, NewLogExporter(logger))
	_, span := tp.Tracer("test").Start(context.Background(), "dropped")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.NotContains(t, buf.String(), "dropped")
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(config.TracingConfig{}, config.ServiceConfig{Name: "test"}, logging.NoOp())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
