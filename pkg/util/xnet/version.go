package xnet

import (
	"net/netip"
	"strconv"
)

// Version IP 协议版本，由 [AddrVersion] 和 [StringVersion] 返回。
type Version uint8

// 协议版本取值与版本号一致。
const (
	V0 Version = 0 // 无效地址
	V4 Version = 4
	V6 Version = 6
)

// String 返回 "IPv4"、"IPv6"，其余返回 "unknown"。
func (v Version) String() string {
	if v == V4 || v == V6 {
		return "IPv" + strconv.Itoa(int(v))
	}
	return "unknown"
}

// AddrVersion 返回 addr 的协议版本，无效地址返回 [V0]。
//
// IPv4 内嵌的 IPv6 地址（::ffff:a.b.c.d）按 V4 计；
// 注意 [IsIPv4] 对同一文本返回 false，它只接受点分十进制形式。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case !addr.IsValid():
		return V0
	case addr.Unmap().Is4():
		return V4
	default:
		return V6
	}
}
