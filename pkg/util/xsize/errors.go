package xsize

import "errors"

var (
	// ErrNilSize 表示字节数缺失（nil）。
	ErrNilSize = errors.New("xsize: size is nil")

	// ErrNegativeSize 表示字节数为负数。
	ErrNegativeSize = errors.New("xsize: size must not be negative")

	// ErrInvalidPlaces 表示小数位数无效。
	ErrInvalidPlaces = errors.New("xsize: invalid decimal places")

	// ErrInvalidSeparator 表示小数分隔符无效。
	ErrInvalidSeparator = errors.New("xsize: invalid decimal separator")

	// ErrUnknownSystem 表示未知的单位制。
	ErrUnknownSystem = errors.New("xsize: unknown unit system")

	// ErrUnknownTier 表示未知的量级。
	ErrUnknownTier = errors.New("xsize: unknown tier")

	// ErrUnknownLocale 表示无法解析的语言标签。
	ErrUnknownLocale = errors.New("xsize: unknown locale")
)
