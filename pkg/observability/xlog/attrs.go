package xlog

import (
	"log/slog"
	"time"

	"github.com/omeyang/xcommons/pkg/util/xsize"
)

// 常用属性 key。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyMethod    = "method"
	KeyPath      = "path"
	KeyComponent = "component"
	KeyOperation = "operation"
)

// Err 创建错误属性。err 为 nil 时返回空属性，slog 会忽略它。
//
//	logger.Error(ctx, "load config failed", xlog.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出 "1.5s" 形式。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性。
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Method 创建 HTTP 方法属性。
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Path 创建请求路径属性。
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Size 创建字节数属性，值为二进制单位的可读形式，如 "1.50 KiB"。
// 值在输出时才格式化，级别未启用时没有格式化开销。
func Size(key string, n uint64) slog.Attr {
	return slog.Any(key, sizeValue(n))
}

// sizeValue 延迟格式化的字节数。
type sizeValue uint64

func (v sizeValue) LogValue() slog.Value {
	return slog.StringValue(xsize.Bytes(v).String())
}
