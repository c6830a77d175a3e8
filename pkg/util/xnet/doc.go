// Package xnet 提供 IP 地址校验工具。
//
// xnet 基于 Go 标准库 [net/netip]，对文本形式的 IP 地址做严格校验：
//
//   - IPv4 必须是点分十进制四段，每段 0-255，不允许前导零（"01.2.3.4" 无效）
//   - IPv6 支持压缩形式（"2001:db8::1"）、IPv4 内嵌形式（"::ffff:1.2.3.4"）和 zone（"fe80::1%eth0"）
//   - 不去除首尾空白，" 1.2.3.4" 无效
//
// # 快速示例
//
//	xnet.IsIP("127.0.0.1")                     // true
//	xnet.IsIPv6("2001:db8::211:22ff:fe33:4455") // true
//	xnet.IsIP("xxx.xxx.xxx.xxx")               // false
//	xnet.IsIPv6Prefix("2001:db8::/32")         // true
//
// 需要解析结果时使用 [ParseAddr]，失败返回包装了 [ErrInvalidAddress] 的错误：
//
//	addr, err := xnet.ParseAddr("192.168.1.1")
//	fmt.Println(xnet.AddrVersion(addr)) // IPv4
//
// # 版本判断
//
// [AddrVersion] 将 IPv4-mapped IPv6 地址（"::ffff:1.2.3.4"）视为 [V4]，
// 而 [IsIPv4] 只接受纯 IPv4 文本形式。两者面向不同场景：
// 前者关注地址语义，后者关注文本格式。
package xnet
