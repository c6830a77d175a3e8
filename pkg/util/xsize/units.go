package xsize

import (
	"fmt"
	"math/big"
	"strings"
)

// UnitSystem 表示字节单位制。
type UnitSystem uint8

const (
	// Binary 表示 IEC 二进制单位制（1 KiB = 1024 B），为默认值。
	Binary UnitSystem = iota
	// SI 表示国际单位制（1 kB = 1000 B）。
	SI
)

// String 返回单位制名称。
func (s UnitSystem) String() string {
	switch s {
	case Binary:
		return "binary"
	case SI:
		return "si"
	default:
		return "unknown"
	}
}

// IsValid 报告 s 是否为已知单位制。
func (s UnitSystem) IsValid() bool {
	return s == Binary || s == SI
}

// ParseUnitSystem 解析单位制名称（大小写不敏感，自动去除首尾空白）。
// 空字符串视为 [Binary]。
//
// 可接受的值：binary/iec、si/metric/decimal。
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "binary", "iec":
		return Binary, nil
	case "si", "metric", "decimal":
		return SI, nil
	default:
		return Binary, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
}

// Tier 表示单位制中的量级，从字节到 yotta/yobi。
type Tier uint8

// 量级常量，两种单位制结构相同。
const (
	TierByte Tier = iota
	TierKilo
	TierMega
	TierGiga
	TierTera
	TierPeta
	TierExa
	TierZetta
	TierYotta
)

// tierCount 每种单位制的量级数。
const tierCount = int(TierYotta) + 1

// 可用 64 位整数表示的 SI 阈值。
const (
	B  = 1
	KB = 1000 * B
	MB = 1000 * KB
	GB = 1000 * MB
	TB = 1000 * GB
	PB = 1000 * TB
	EB = 1000 * PB
)

// 可用 64 位整数表示的二进制阈值。
const (
	KiB = 1 << (10 * (iota + 1))
	MiB
	GiB
	TiB
	PiB
	EiB
)

// unit 单位表中的一项。
type unit struct {
	threshold *big.Int
	symbol    string
}

var (
	siSymbols     = [tierCount]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	binarySymbols = [tierCount]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

	// 单位表在包初始化时构建，之后只读。
	siTable     = buildTable(1000, siSymbols)
	binaryTable = buildTable(1024, binarySymbols)
)

// buildTable 按 base 的幂次构建单位表：base^0, base^1, ..., base^8。
func buildTable(base int64, symbols [tierCount]string) [tierCount]unit {
	var table [tierCount]unit
	b := big.NewInt(base)
	cur := big.NewInt(1)
	for i, sym := range symbols {
		table[i] = unit{threshold: new(big.Int).Set(cur), symbol: sym}
		cur.Mul(cur, b)
	}
	return table
}

// table 返回单位制对应的单位表，未知单位制回退到二进制表。
func (s UnitSystem) table() *[tierCount]unit {
	if s == SI {
		return &siTable
	}
	return &binaryTable
}

// Threshold 返回指定单位制和量级的字节阈值。
// 返回值是副本，调用方可自由修改。
func Threshold(system UnitSystem, tier Tier) (*big.Int, error) {
	u, err := lookup(system, tier)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(u.threshold), nil
}

// Symbol 返回指定单位制和量级的单位符号，如 (Binary, TierKilo) → "KiB"。
func Symbol(system UnitSystem, tier Tier) (string, error) {
	u, err := lookup(system, tier)
	if err != nil {
		return "", err
	}
	return u.symbol, nil
}

// Symbols 返回单位制的全部符号，按量级从小到大排列。
func Symbols(system UnitSystem) []string {
	table := system.table()
	out := make([]string, 0, tierCount)
	for i := range table {
		out = append(out, table[i].symbol)
	}
	return out
}

func lookup(system UnitSystem, tier Tier) (*unit, error) {
	if !system.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSystem, system)
	}
	if int(tier) >= tierCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}
	return &system.table()[tier], nil
}
