// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 把 go-metrics 的统计数据输出到日志或者 prometheus
package metrics

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	arenalog "github.com/33cn/arena/common/log"
	"github.com/33cn/arena/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = arenalog.New("module", "arena metrics")
)

// Namespace prometheus 指标的前缀
var Namespace = "arena"

// emit mode
const (
	EmitModeLog        = "log"
	EmitModePrometheus = "prometheus"
)

// Reporter 正在运行的统计输出，Stop 之后停止
type Reporter struct {
	srv  *http.Server
	cue  chan interface{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// StartMetrics 根据配置文件相关参数启动，未开启或者配置不支持时返回 nil
func StartMetrics(cfg *types.Metrics) *Reporter {
	return startReporter(go_metrics.DefaultRegistry, cfg, logWriter{})
}

func startReporter(registry go_metrics.Registry, cfg *types.Metrics, l go_metrics.Logger) *Reporter {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return nil
	}
	r := &Reporter{}
	switch cfg.DataEmitMode {
	case EmitModeLog:
		log.Info("StartMetrics with log", "duration", cfg.Duration)
		duration := time.Duration(cfg.Duration) * time.Second
		if duration <= 0 {
			duration = 10 * time.Second
		}
		r.cue = make(chan interface{})
		r.quit = make(chan struct{})
		r.done = make(chan struct{})
		go r.tick(duration)
		go func() {
			go_metrics.LogOnCue(registry, r.cue, l)
			close(r.done)
		}()
	case EmitModePrometheus:
		log.Info("StartMetrics with prometheus", "listenAddr", cfg.ListenAddr)
		r.srv = &http.Server{Addr: cfg.ListenAddr, Handler: Handler(Namespace, registry)}
		go func() {
			err := r.srv.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				log.Error("startMetrics", "listen", cfg.ListenAddr, "err", err)
			}
		}()
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return nil
	}
	return r
}

// tick 定时输出，退出前再输出一次，保证短命令也能留下统计
func (r *Reporter) tick(d time.Duration) {
	defer close(r.cue)
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.cue <- struct{}{}
		case <-r.quit:
			r.cue <- struct{}{}
			return
		}
	}
}

// Stop 关闭 prometheus 监听；日志模式下输出最后一次快照后返回
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		if r.srv != nil {
			r.srv.Close()
		}
		if r.quit != nil {
			close(r.quit)
			<-r.done
		}
	})
}

// Handler prometheus 格式的 /metrics
func Handler(namespace string, registry go_metrics.Registry) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewRegistryCollector(namespace, registry))
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

type logWriter struct{}

func (logWriter) Printf(format string, v ...interface{}) {
	log.Info("metrics", "data", strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// RegistryCollector 把 go-metrics registry 中的计数器、计量器和计时器转换为 prometheus 指标
type RegistryCollector struct {
	namespace string
	registry  go_metrics.Registry
}

// NewRegistryCollector new collector
func NewRegistryCollector(namespace string, registry go_metrics.Registry) *RegistryCollector {
	return &RegistryCollector{namespace: namespace, registry: registry}
}

// Describe 不预先声明指标，作为 unchecked collector 注册
func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {}

// Collect 遍历 registry
func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			ch <- c.constMetric(name+"_total", prometheus.CounterValue, float64(m.Count()))
		case go_metrics.Gauge:
			ch <- c.constMetric(name, prometheus.GaugeValue, float64(m.Value()))
		case go_metrics.Meter:
			s := m.Snapshot()
			ch <- c.constMetric(name+"_total", prometheus.CounterValue, float64(s.Count()))
		case go_metrics.Timer:
			s := m.Snapshot()
			ch <- c.constMetric(name+"_count", prometheus.CounterValue, float64(s.Count()))
			ch <- c.constMetric(name+"_mean_seconds", prometheus.GaugeValue, s.Mean()/float64(time.Second))
		}
	})
}

func (c *RegistryCollector) constMetric(name string, ty prometheus.ValueType, value float64) prometheus.Metric {
	desc := prometheus.NewDesc(prometheus.BuildFQName(c.namespace, "", metricName(name)), name, nil, nil)
	return prometheus.MustNewConstMetric(desc, ty, value)
}

// metricName 把 go-metrics 的名字转换为合法的 prometheus 名字
func metricName(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return '_'
	}, name)
}
