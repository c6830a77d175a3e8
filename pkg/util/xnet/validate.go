package xnet

import (
	"fmt"
	"net/netip"
)

// ParseAddr 解析 IP 地址字符串。
// 失败时返回包装了 [ErrInvalidAddress] 的错误。
func ParseAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, s, err)
	}
	return addr, nil
}

// ParsePrefix 解析 CIDR 前缀字符串，如 "10.0.0.0/8"、"2001:db8::/32"。
// 失败时返回包装了 [ErrInvalidPrefix] 的错误。
func ParsePrefix(s string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q: %w", ErrInvalidPrefix, s, err)
	}
	return p, nil
}

// IsIP 报告 s 是否为合法的 IPv4 或 IPv6 地址。
func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// IsIPv4 报告 s 是否为合法的点分十进制 IPv4 地址。
func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsIPv6 报告 s 是否为合法的 IPv6 地址（含 IPv4 内嵌形式和 zone）。
func IsIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6()
}

// IsIPv6Prefix 报告 s 是否为 "IPv6地址/位数" 形式的前缀，位数 0-128。
func IsIPv6Prefix(s string) bool {
	p, err := netip.ParsePrefix(s)
	return err == nil && p.Addr().Is6()
}

// StringVersion 返回文本形式地址的 IP 版本，无效地址返回 [V0]。
func StringVersion(s string) Version {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return V0
	}
	return AddrVersion(addr)
}
