// Package xproc 提供当前进程与 Go 运行时的信息查询。
//
// 分为三层：
//
//   - 进程标识：[ProcessID]、[ProcessName]、[Arguments]、[StartTime]、[Uptime]、[MainModule]
//   - 运行时：[GoVersion]、[NumCPU]、[GOMAXPROCS]、[NumGoroutine]、[NumThread]、
//     [Memory]、[GCStats]、[DumpGoroutines]，只依赖标准库 runtime，开销小
//   - 操作系统视角：[ReadProcessStats]、[LoadAverage]，基于 gopsutil 读取 /proc 等系统接口，
//     需要 context，某些平台可能返回错误
//
// [Snapshot] 一次性采集以上信息，[ProcessSnapshot.LogAttrs] 转换为 slog 属性，
// 便于启动日志和诊断日志输出。
//
// [RegisterMetrics] 将协程数、堆内存、GC 次数和 RSS 注册为 OpenTelemetry 可观测仪表。
//
// # 快速示例
//
//	logger.Info(ctx, "process started", xproc.Snapshot(ctx).LogAttrs()...)
//
//	reg, err := xproc.RegisterMetrics(xproc.WithMeterProvider(mp))
//	if err != nil {
//	    return err
//	}
//	defer reg.Unregister()
package xproc
