package mcp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.ObserveTool("list_services", nil)
	m.ObserveTool("list_services", nil)
	m.ObserveTool("list_services", errors.New("bad state"))
	m.ObserveResource("states", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("list_services", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("list_services", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resourceReads.WithLabelValues("states", "ok")))
}

func TestServer_CountsToolCalls(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, _, err := server.handleListServices(ctx, nil, ListServicesInput{State: "Delhi"})
	require.NoError(t, err)
	_, _, err = server.handleListServices(ctx, nil, ListServicesInput{State: "Atlantis"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(server.metrics.toolCalls.WithLabelValues("list_services", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(server.metrics.toolCalls.WithLabelValues("list_services", "error")))
}

func TestServer_MetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	_, _, err := server.handleListHelplines(context.Background(), nil, ListHelplinesInput{})
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `seva_mcp_tool_calls_total{outcome="ok",tool="list_helplines"} 1`)
}
