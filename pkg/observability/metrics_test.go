package observability_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/Hakkology/MuginCAD-sub000/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	d := mugincad.New(mugincad.WithLifecycleHooks(m.Hooks()))

	d.Submit("circle")
	d.Click(geom.Vec(0, 0))
	d.Submit("5")

	d.Submit("line")
	d.Cancel()

	d.Submit("move") // nothing selected

	// CIRCLE started/completed, LINE started/cancelled, MOVE refused.
	assert.Equal(t, 5, testutil.CollectAndCount(reg, "mugincad_commands_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "mugincad_command_steps_total"))

	body := scrape(t, m)
	assert.Contains(t, body, `mugincad_commands_total{command="CIRCLE",outcome="completed"} 1`)
	assert.Contains(t, body, `mugincad_commands_total{command="LINE",outcome="cancelled"} 1`)
	assert.Contains(t, body, `mugincad_commands_total{command="MOVE",outcome="refused"} 1`)
	assert.Contains(t, body, `mugincad_command_duration_seconds_count{command="CIRCLE",outcome="completed"} 1`)
}

func scrape(t *testing.T, m *observability.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestLoggingHooks(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	d := mugincad.New(mugincad.WithLifecycleHooks(observability.LoggingHooks(logger)))

	d.Submit("rect")
	d.Click(geom.Vec(0, 0))
	d.Click(geom.Vec(1, 1))

	out := buf.String()
	assert.Contains(t, out, "msg=command_start command=RECTANGLE")
	assert.Contains(t, out, "msg=command_complete command=RECTANGLE")
}
