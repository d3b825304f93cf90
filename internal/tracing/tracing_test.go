package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/valentine/internal/config"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	p, err := Setup(context.Background(), config.TracingConfig{}, "test")
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "phase.opening")
	assert.False(t, span.SpanContext().IsValid(), "noop spans carry no context")
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_FileExporterWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")
	p, err := Setup(context.Background(), config.TracingConfig{
		Enabled:  true,
		Exporter: config.ExporterFile,
		File:     path,
	}, "v1.2.3")
	require.NoError(t, err)
	require.True(t, p.Enabled())

	ctx, run := p.Tracer().Start(context.Background(), "valentine.run")
	_, phase := p.Tracer().Start(ctx, "phase.game")
	phase.AddEvent("petal.pluck")
	phase.End()
	run.End()

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"Name":"valentine.run"`)
	assert.Contains(t, out, `"Name":"phase.game"`)
	assert.Contains(t, out, "petal.pluck")
	assert.Contains(t, out, "v1.2.3")
}

func TestSetup_FileExporterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	cfg := config.TracingConfig{Enabled: true, Exporter: config.ExporterFile, File: path}

	for _, name := range []string{"first", "second"} {
		p, err := Setup(context.Background(), cfg, "test")
		require.NoError(t, err)
		_, span := p.Tracer().Start(context.Background(), name)
		span.End()
		require.NoError(t, p.Shutdown(context.Background()))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"first"`)
	assert.Contains(t, string(data), `"Name":"second"`)
}

func TestSetup_UnknownExporter(t *testing.T) {
	_, err := Setup(context.Background(), config.TracingConfig{Enabled: true, Exporter: "zipkin"}, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown trace exporter "zipkin"`)
}

func TestSetup_UnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := Setup(context.Background(), config.TracingConfig{
		Enabled:  true,
		Exporter: config.ExporterFile,
		File:     filepath.Join(blocker, "traces.jsonl"),
	}, "test")
	require.Error(t, err)
}

func TestSetup_OTLPBuildsLazily(t *testing.T) {
	p, err := Setup(context.Background(), config.TracingConfig{
		Enabled:  true,
		Exporter: config.ExporterOTLP,
		Endpoint: "127.0.0.1:4317",
		Insecure: true,
	}, "test")
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}
