// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/33cn/arena/types"
	"github.com/prometheus/client_golang/prometheus"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricName(t *testing.T) {
	assert.Equal(t, "executor_tx_ok", metricName("executor.tx.ok"))
	assert.Equal(t, "arena_rps_create", metricName("arena-rps/create"))
}

func TestRegistryCollector(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("executor.tx.ok", r).Inc(3)
	go_metrics.GetOrRegisterGauge("arena.players", r).Update(2)
	go_metrics.GetOrRegisterTimer("executor.exectx", r).Update(time.Millisecond)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewRegistryCollector("test", r)))
	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[f.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[f.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, float64(3), values["test_executor_tx_ok_total"])
	assert.Equal(t, float64(2), values["test_arena_players"])
	assert.Equal(t, float64(1), values["test_executor_exectx_count"])
}

func TestStartMetricsDisabled(t *testing.T) {
	assert.Nil(t, StartMetrics(nil))
	assert.Nil(t, StartMetrics(&types.Metrics{EnableMetrics: false}))
	assert.Nil(t, StartMetrics(&types.Metrics{EnableMetrics: true, DataEmitMode: "unknown"}))
	// nil reporter 可以直接 Stop
	var r *Reporter
	r.Stop()
}

type lines struct {
	mu  sync.Mutex
	buf []string
}

func (l *lines) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func TestReporterLogFlushOnStop(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("arena.rps.settle", r).Inc(2)
	out := &lines{}
	// 间隔足够长，只有 Stop 时的最后一次输出
	rep := startReporter(r, &types.Metrics{EnableMetrics: true, DataEmitMode: EmitModeLog, Duration: 3600}, out)
	require.NotNil(t, rep)
	rep.Stop()
	rep.Stop()

	out.mu.Lock()
	defer out.mu.Unlock()
	require.Len(t, out.buf, 2)
	assert.Equal(t, "counter arena.rps.settle", out.buf[0])
	assert.Equal(t, "count:               2", out.buf[1])
}

func TestHandler(t *testing.T) {
	r := go_metrics.NewRegistry()
	go_metrics.GetOrRegisterCounter("executor.tx.ok", r).Inc(3)
	srv := httptest.NewServer(Handler("arena", r))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "arena_executor_tx_ok_total 3")
}

func TestReporterPrometheusStop(t *testing.T) {
	rep := startReporter(go_metrics.NewRegistry(), &types.Metrics{EnableMetrics: true, DataEmitMode: EmitModePrometheus, ListenAddr: "127.0.0.1:0"}, &lines{})
	require.NotNil(t, rep)
	rep.Stop()
}
