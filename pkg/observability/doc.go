// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持文件轮转
//
// 运行时指标见 [github.com/omeyang/xcommons/pkg/util/xproc.RegisterMetrics]。
package observability
