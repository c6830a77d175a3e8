package xproc

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// 以下函数变量支持测试中 mock 失败路径。
var (
	newProcess = process.NewProcessWithContext
	loadAvg    = load.AvgWithContext
)

// ProcessStats 操作系统视角的进程统计。
//
// NumFDs 在不支持的平台上为 -1。
type ProcessStats struct {
	RSS        uint64
	VMS        uint64
	CPUPercent float64
	NumThreads int32
	NumFDs     int32
	CreateTime time.Time
}

// ReadProcessStats 读取当前进程的操作系统统计。
// 内存信息为必需项，失败时返回包装了 [ErrProcessStats] 的错误；
// 其余字段尽力获取，失败时保留零值（NumFDs 为 -1）。
func ReadProcessStats(ctx context.Context) (ProcessStats, error) {
	if ctx == nil {
		return ProcessStats{}, ErrNilContext
	}
	p, err := newProcess(ctx, int32(ProcessID())) //nolint:gosec // PID 在 int32 范围内
	if err != nil {
		return ProcessStats{}, fmt.Errorf("%w: %w", ErrProcessStats, err)
	}

	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return ProcessStats{}, fmt.Errorf("%w: memory info: %w", ErrProcessStats, err)
	}
	stats := ProcessStats{
		RSS:    mem.RSS,
		VMS:    mem.VMS,
		NumFDs: -1,
	}

	if cpu, err := p.CPUPercentWithContext(ctx); err == nil {
		stats.CPUPercent = cpu
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		stats.NumThreads = n
	}
	if n, err := p.NumFDsWithContext(ctx); err == nil {
		stats.NumFDs = n
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		stats.CreateTime = time.UnixMilli(ms)
	}
	return stats, nil
}

// LoadAvg 系统 1/5/15 分钟平均负载。
type LoadAvg struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// LoadAverage 读取系统平均负载。
// Windows 等不提供负载信息的平台返回包装了 [ErrLoadAverage] 的错误。
func LoadAverage(ctx context.Context) (LoadAvg, error) {
	if ctx == nil {
		return LoadAvg{}, ErrNilContext
	}
	avg, err := loadAvg(ctx)
	if err != nil {
		return LoadAvg{}, fmt.Errorf("%w: %w", ErrLoadAverage, err)
	}
	return LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}
