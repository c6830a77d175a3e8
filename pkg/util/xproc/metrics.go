package xproc

import (
	"context"
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xcommons/xproc"

	// 指标名称。

	MetricGoroutines = "process.runtime.go.goroutines"
	MetricHeapAlloc  = "process.runtime.go.mem.heap_alloc"
	MetricGCCount    = "process.runtime.go.gc.count"
	MetricRSS        = "process.memory.rss"
)

type metricsConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// MetricsOption 定义 [RegisterMetrics] 的配置选项。
type MetricsOption func(*metricsConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) MetricsOption {
	return func(cfg *metricsConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用 otel.GetMeterProvider()。
func WithMeterProvider(provider metric.MeterProvider) MetricsOption {
	return func(cfg *metricsConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// RegisterMetrics 将进程运行时指标注册为 OpenTelemetry 可观测仪表。
//
// 指标在每次采集时计算：协程数、堆已分配字节、GC 次数、常驻内存（RSS）。
// RSS 读取失败时（如平台不支持）该次采集跳过 RSS，其余指标照常上报。
// 调用方应在不再需要时调用返回值的 Unregister。
func RegisterMetrics(opts ...MetricsOption) (metric.Registration, error) {
	cfg := &metricsConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	goroutines, err := meter.Int64ObservableGauge(MetricGoroutines,
		metric.WithDescription("number of live goroutines"),
		metric.WithUnit("{goroutine}"))
	if err != nil {
		return nil, fmt.Errorf("xproc: create goroutines gauge failed: %w", err)
	}
	heap, err := meter.Int64ObservableGauge(MetricHeapAlloc,
		metric.WithDescription("bytes of allocated heap objects"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("xproc: create heap gauge failed: %w", err)
	}
	gcCount, err := meter.Int64ObservableGauge(MetricGCCount,
		metric.WithDescription("number of completed GC cycles"),
		metric.WithUnit("{gc}"))
	if err != nil {
		return nil, fmt.Errorf("xproc: create gc gauge failed: %w", err)
	}
	rss, err := meter.Int64ObservableGauge(MetricRSS,
		metric.WithDescription("resident set size"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("xproc: create rss gauge failed: %w", err)
	}

	var (
		procOnce sync.Once
		proc     *process.Process
	)
	callback := func(ctx context.Context, o metric.Observer) error {
		mem := Memory()
		o.ObserveInt64(goroutines, int64(NumGoroutine()))
		o.ObserveInt64(heap, int64(mem.HeapAlloc)) //nolint:gosec // 堆大小不会超过 MaxInt64
		o.ObserveInt64(gcCount, int64(mem.NumGC))

		procOnce.Do(func() {
			proc, _ = newProcess(ctx, int32(ProcessID())) //nolint:gosec // PID 在 int32 范围内
		})
		if proc != nil {
			if info, err := proc.MemoryInfoWithContext(ctx); err == nil {
				o.ObserveInt64(rss, int64(info.RSS)) //nolint:gosec // RSS 不会超过 MaxInt64
			}
		}
		return nil
	}

	reg, err := meter.RegisterCallback(callback, goroutines, heap, gcCount, rss)
	if err != nil {
		return nil, fmt.Errorf("xproc: register callback failed: %w", err)
	}
	return reg, nil
}
