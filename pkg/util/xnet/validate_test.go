package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIP(t *testing.T) {
	tests := []struct {
		in         string
		ip, v4, v6 bool
	}{
		{"127.0.0.1", true, true, false},
		{"0.0.0.0", true, true, false},
		{"255.255.255.255", true, true, false},
		{"2001:db8::211:22ff:fe33:4455", true, false, true},
		{"::1", true, false, true},
		{"::", true, false, true},
		{"::ffff:192.168.1.1", true, false, true},
		{"fe80::1%eth0", true, false, true},
		{"xxx.xxx.xxx.xxx", false, false, false},
		{"256.1.1.1", false, false, false},
		{"01.2.3.4", false, false, false},
		{"1.2.3", false, false, false},
		{" 1.2.3.4", false, false, false},
		{"1.2.3.4 ", false, false, false},
		{"2001:db8:::1", false, false, false},
		{"10.0.0.0/8", false, false, false},
		{"", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.ip, IsIP(tt.in), "IsIP")
			assert.Equal(t, tt.v4, IsIPv4(tt.in), "IsIPv4")
			assert.Equal(t, tt.v6, IsIPv6(tt.in), "IsIPv6")
		})
	}
}

func TestIsIPv6Prefix(t *testing.T) {
	assert.True(t, IsIPv6Prefix("2001:db8::/32"))
	assert.True(t, IsIPv6Prefix("::/0"))
	assert.True(t, IsIPv6Prefix("2001:db8::1/128"))
	assert.False(t, IsIPv6Prefix("2001:db8::/129"))
	assert.False(t, IsIPv6Prefix("10.0.0.0/8"))
	assert.False(t, IsIPv6Prefix("2001:db8::"))
	assert.False(t, IsIPv6Prefix(""))

	// 前缀形式只由 IsIPv6Prefix 接受
	assert.False(t, IsIPv6("::1/128"))
	assert.True(t, IsIPv6Prefix("::1/128"))
}

func TestParseAddr(t *testing.T) {
	addr, err := ParseAddr("192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("192.168.1.1"), addr)

	_, err = ParseAddr("not-an-ip")
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), `"not-an-ip"`)
}

func TestParsePrefix(t *testing.T) {
	p, err := ParsePrefix("10.0.0.0/8")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Bits())

	_, err = ParsePrefix("10.0.0.0/33")
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestStringVersion(t *testing.T) {
	assert.Equal(t, V4, StringVersion("10.1.2.3"))
	assert.Equal(t, V6, StringVersion("2001:db8::1"))
	assert.Equal(t, V4, StringVersion("::ffff:10.1.2.3"))
	assert.Equal(t, V0, StringVersion("bogus"))
}
