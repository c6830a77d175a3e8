package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidPrefix 表示无效的 CIDR 前缀字符串。
	ErrInvalidPrefix = errors.New("xnet: invalid IP prefix")
)
