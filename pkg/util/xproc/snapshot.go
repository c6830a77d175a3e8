package xproc

import (
	"context"
	"log/slog"
	"time"

	"github.com/omeyang/xcommons/pkg/util/xsize"
)

// ProcessSnapshot 某一时刻的进程状态。
// Stats 和 Load 在无法读取时为 nil。
type ProcessSnapshot struct {
	PID          int
	Name         string
	GoVersion    string
	NumCPU       int
	GOMAXPROCS   int
	NumGoroutine int
	NumThread    int
	Uptime       time.Duration
	Memory       MemoryUsage
	Stats        *ProcessStats
	Load         *LoadAvg
}

// Snapshot 采集当前进程状态。
// 操作系统统计尽力获取，失败时对应字段为 nil，不返回错误。
func Snapshot(ctx context.Context) ProcessSnapshot {
	s := ProcessSnapshot{
		PID:          ProcessID(),
		Name:         ProcessName(),
		GoVersion:    GoVersion(),
		NumCPU:       NumCPU(),
		GOMAXPROCS:   GOMAXPROCS(),
		NumGoroutine: NumGoroutine(),
		NumThread:    NumThread(),
		Uptime:       Uptime(),
		Memory:       Memory(),
	}
	if stats, err := ReadProcessStats(ctx); err == nil {
		s.Stats = &stats
	}
	if avg, err := LoadAverage(ctx); err == nil {
		s.Load = &avg
	}
	return s
}

// LogAttrs 将快照转换为 slog 属性，字节数以人类可读形式输出。
func (s ProcessSnapshot) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.Int("pid", s.PID),
		slog.String("name", s.Name),
		slog.String("go_version", s.GoVersion),
		slog.Int("num_cpu", s.NumCPU),
		slog.Int("gomaxprocs", s.GOMAXPROCS),
		slog.Int("goroutines", s.NumGoroutine),
		slog.Int("threads", s.NumThread),
		slog.Duration("uptime", s.Uptime),
		slog.Group("memory",
			slog.String("heap_alloc", xsize.Bytes(s.Memory.HeapAlloc).String()),
			slog.String("heap_sys", xsize.Bytes(s.Memory.HeapSys).String()),
			slog.String("sys", xsize.Bytes(s.Memory.Sys).String()),
			slog.Uint64("num_gc", uint64(s.Memory.NumGC)),
		),
	}
	if s.Stats != nil {
		attrs = append(attrs, slog.Group("os",
			slog.String("rss", xsize.Bytes(s.Stats.RSS).String()),
			slog.String("vms", xsize.Bytes(s.Stats.VMS).String()),
			slog.Float64("cpu_percent", s.Stats.CPUPercent),
			slog.Int("fds", int(s.Stats.NumFDs)),
		))
	}
	if s.Load != nil {
		attrs = append(attrs, slog.Group("load",
			slog.Float64("1m", s.Load.Load1),
			slog.Float64("5m", s.Load.Load5),
			slog.Float64("15m", s.Load.Load15),
		))
	}
	return attrs
}
