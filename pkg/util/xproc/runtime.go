package xproc

import (
	"math"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"time"
)

// GoVersion 返回构建当前二进制的 Go 版本，如 "go1.25.9"。
func GoVersion() string {
	return runtime.Version()
}

// Compiler 返回编译器名称，通常为 "gc"。
func Compiler() string {
	return runtime.Compiler
}

// NumCPU 返回当前进程可用的逻辑 CPU 数。
func NumCPU() int {
	return runtime.NumCPU()
}

// GOMAXPROCS 返回当前 GOMAXPROCS 设置，不修改该值。
func GOMAXPROCS() int {
	return runtime.GOMAXPROCS(0)
}

// NumGoroutine 返回当前存活的协程数。
func NumGoroutine() int {
	return runtime.NumGoroutine()
}

// NumThread 返回运行时已创建的操作系统线程数。
func NumThread() int {
	return pprof.Lookup("threadcreate").Count()
}

// MemoryUsage 运行时内存统计，字节数均为 uint64。
type MemoryUsage struct {
	HeapAlloc    uint64
	HeapSys      uint64
	HeapIdle     uint64
	HeapInuse    uint64
	HeapReleased uint64
	HeapObjects  uint64
	StackInuse   uint64
	Sys          uint64
	TotalAlloc   uint64
	NextGC       uint64
	NumGC        uint32
	PauseTotal   time.Duration

	// Limit 软内存上限（GOMEMLIMIT），未设置时为 math.MaxInt64。
	Limit int64
}

// Unlimited 报告是否未设置软内存上限。
func (m MemoryUsage) Unlimited() bool {
	return m.Limit == math.MaxInt64
}

// Memory 读取运行时内存统计。
// 内部调用 [runtime.ReadMemStats]，会短暂 stop-the-world，不宜高频调用。
func Memory() MemoryUsage {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryUsage{
		HeapAlloc:    ms.HeapAlloc,
		HeapSys:      ms.HeapSys,
		HeapIdle:     ms.HeapIdle,
		HeapInuse:    ms.HeapInuse,
		HeapReleased: ms.HeapReleased,
		HeapObjects:  ms.HeapObjects,
		StackInuse:   ms.StackInuse,
		Sys:          ms.Sys,
		TotalAlloc:   ms.TotalAlloc,
		NextGC:       ms.NextGC,
		NumGC:        ms.NumGC,
		PauseTotal:   time.Duration(ms.PauseTotalNs), //nolint:gosec // 累计暂停时间远小于 MaxInt64 纳秒
		Limit:        debug.SetMemoryLimit(-1),
	}
}

// GCSummary 垃圾回收摘要。
type GCSummary struct {
	NumGC      int64
	LastGC     time.Time
	PauseTotal time.Duration
}

// GCStats 读取垃圾回收统计。尚未发生 GC 时 LastGC 为零值。
func GCStats() GCSummary {
	var s debug.GCStats
	debug.ReadGCStats(&s)
	return GCSummary{
		NumGC:      s.NumGC,
		LastGC:     s.LastGC,
		PauseTotal: s.PauseTotal,
	}
}

const (
	dumpInitialSize = 64 << 10
	dumpMaxSize     = 64 << 20
)

// DumpGoroutines 返回所有协程的调用栈文本，格式与 panic 输出一致。
// 输出超过 64 MiB 时截断。
func DumpGoroutines() []byte {
	buf := make([]byte, dumpInitialSize)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) || len(buf) >= dumpMaxSize {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}
