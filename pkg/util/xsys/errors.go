package xsys

import "errors"

var (
	// ErrUnsupportedPlatform 表示当前平台不支持此操作。
	ErrUnsupportedPlatform = errors.New("xsys: unsupported platform")

	// ErrUnknownProperty 表示未知的属性键。
	ErrUnknownProperty = errors.New("xsys: unknown property")
)
