package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口。
//
// 所有方法强制传入 context，便于 handler 从中提取请求级信息。
// 只接受 slog.Attr，避免 key-value 交替参数的隐式转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带固定属性的派生 Logger。
	With(attrs ...slog.Attr) Logger

	// WithGroup 返回带分组的派生 Logger，后续属性归入该分组。
	WithGroup(name string) Logger
}

// Leveler 级别控制接口。
type Leveler interface {
	// SetLevel 运行时调整级别，派生 logger 同步生效。
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel Logger 与 Leveler 的组合，[Builder.Build] 返回此接口。
type LoggerWithLevel interface {
	Logger
	Leveler
}
