package xproc

import "errors"

var (
	// ErrProcessStats 表示无法读取进程的操作系统统计信息。
	ErrProcessStats = errors.New("xproc: process stats unavailable")

	// ErrLoadAverage 表示无法读取系统负载。
	ErrLoadAverage = errors.New("xproc: load average unavailable")

	// ErrNilContext 表示 context 参数为 nil。
	ErrNilContext = errors.New("xproc: nil context")
)
