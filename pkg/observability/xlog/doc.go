// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式，遇到第一个配置错误后后续 Set 操作被跳过，错误在 Build 时返回：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevel(xlog.LevelDebug).
//	    SetFormat("json").
//	    SetRotation("/var/log/app.log", xlog.RotationConfig{MaxSizeMB: 100}).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// 也可以从声明式配置创建，见 [Config] 与 [NewFromConfig]。
//
// # 接口
//
// [Logger] 的所有方法都要求 context.Context，只接受 slog.Attr。
// [Leveler] 提供运行时级别调整，Build 返回两者的组合 [LoggerWithLevel]。
// With/WithGroup 派生的 logger 共享父级的级别。
//
// # 全局 Logger
//
// [Default] 惰性创建 stderr/Info/text 的全局 logger，[SetDefault] 替换，
// [ResetDefault] 仅用于测试。[Debug]、[Info]、[Warn]、[Error] 是全局便利函数。
// [Discard] 返回丢弃所有输出的 logger，适合作为组件的默认值。
//
// # 便捷属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Count]、[Method]、[Path]、[Size]。
// [Size] 将字节数输出为 "1.50 KiB" 形式。
//
// # 文件轮转
//
// [Builder.SetRotation] 使用 lumberjack 按大小轮转，cleanup 负责关闭文件。
package xlog
