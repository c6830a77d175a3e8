package xsize

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter 字节数格式化器。
// 构建后不可变，并发安全。
type Formatter struct {
	system    UnitSystem
	places    int
	separator rune
}

// New 使用选项创建格式化器。
func New(opts ...Option) (*Formatter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.resolve(); err != nil {
		return nil, err
	}
	return &Formatter{
		system:    o.system,
		places:    o.places,
		separator: o.separator,
	}, nil
}

// System 返回格式化器使用的单位制。
func (f *Formatter) System() UnitSystem { return f.system }

// Places 返回格式化器使用的小数位数。
func (f *Formatter) Places() int { return f.places }

// Separator 返回格式化器使用的小数分隔符。
func (f *Formatter) Separator() rune { return f.separator }

// Format 将 size 字节格式化为 "<数值> <单位>"。
//
// size 为 nil 返回 [ErrNilSize]，为负数返回 [ErrNegativeSize]。
// size 不会被修改。
func (f *Formatter) Format(size *big.Int) (string, error) {
	if size == nil {
		return "", ErrNilSize
	}
	if size.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrNegativeSize, size)
	}

	table := f.system.table()
	for i := tierCount - 1; i > int(TierByte); i-- {
		u := &table[i]
		if size.Cmp(u.threshold) >= 0 {
			return f.render(size, u), nil
		}
	}
	return size.String() + " " + table[TierByte].symbol, nil
}

// render 按选中的单位渲染数值部分。
// 整除时输出整数商；否则以定点除法截断到 places 位小数。
func (f *Formatter) render(size *big.Int, u *unit) string {
	quo, rem := new(big.Int).QuoRem(size, u.threshold, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String() + " " + u.symbol
	}

	places := int32(f.places) //nolint:gosec // places 已在 resolve 中限制在 int32 范围内
	// QuoRem 的商是 10^-places 的整数倍，且对非负数等价于向零截断。
	q, _ := decimal.NewFromBigInt(size, 0).QuoRem(decimal.NewFromBigInt(u.threshold, 0), places)
	num := q.StringFixed(places)
	if f.separator != '.' {
		num = strings.Replace(num, ".", string(f.separator), 1)
	}
	return num + " " + u.symbol
}

// Format 使用选项将 size 字节格式化为人类可读字符串。
//
//	xsize.Format(big.NewInt(2047))                          // "1.99 KiB", nil
//	xsize.Format(big.NewInt(1000), xsize.WithSIUnits(true)) // "1 kB", nil
func Format(size *big.Int, opts ...Option) (string, error) {
	f, err := New(opts...)
	if err != nil {
		return "", err
	}
	return f.Format(size)
}

// FormatInt64 是 [Format] 的 int64 版本。
func FormatInt64(size int64, opts ...Option) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	return Format(big.NewInt(size), opts...)
}

// FormatUint64 是 [Format] 的 uint64 版本。
func FormatUint64(size uint64, opts ...Option) (string, error) {
	return Format(new(big.Int).SetUint64(size), opts...)
}

// defaultFormatter 使用默认选项的格式化器，供 [Bytes] 使用。
var defaultFormatter = &Formatter{
	system:    Binary,
	places:    DefaultPlaces,
	separator: DefaultSeparator,
}

// Bytes 表示字节数，String 使用默认选项（二进制单位、2 位小数）。
//
//	fmt.Println(xsize.Bytes(1536)) // 1.50 KiB
type Bytes uint64

// String 实现 fmt.Stringer。
func (b Bytes) String() string {
	// 非负且选项固定，不会出错
	s, _ := defaultFormatter.Format(new(big.Int).SetUint64(uint64(b)))
	return s
}
