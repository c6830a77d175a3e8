package xsize

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func mustFormat(t *testing.T, size int64, opts ...Option) string {
	t.Helper()
	s, err := FormatInt64(size, opts...)
	require.NoError(t, err)
	return s
}

func TestFormatBinary(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{480, "480 B"},
		{520, "520 B"},
		{1023, "1023 B"},
		{1024, "1 KiB"},
		{1025, "1.00 KiB"},
		{2047, "1.99 KiB"},
		{2048, "2 KiB"},
		{1 << 20, "1 MiB"},
		{1<<20 + 1, "1.00 MiB"},
		{2<<20 - 1, "1.99 MiB"},
		{1 << 30, "1 GiB"},
		{1<<30 + 1, "1.00 GiB"},
		{2<<30 - 1, "1.99 GiB"},
		{2 << 30, "2 GiB"},
		{1 << 40, "1 TiB"},
		{1 << 50, "1 PiB"},
		{1 << 60, "1 EiB"},
		{math.MaxInt64, "7.99 EiB"},
		{math.MaxUint16, "63.99 KiB"},
		{math.MaxInt16, "31.99 KiB"},
		{math.MaxInt32, "1.99 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, mustFormat(t, tt.size))
		})
	}
}

func TestFormatSI(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{480, "480 B"},
		{520, "520 B"},
		{999, "999 B"},
		{1000, "1 kB"},
		{1025, "1.02 kB"},
		{1999, "1.99 kB"},
		{2000, "2 kB"},
		{MB, "1 MB"},
		{MB + 1, "1.00 MB"},
		{2*MB - 1, "1.99 MB"},
		{GB, "1 GB"},
		{GB + 1, "1.00 GB"},
		{2*GB - 1, "1.99 GB"},
		{2 * GB, "2 GB"},
		{TB, "1 TB"},
		{PB, "1 PB"},
		{EB, "1 EB"},
		{math.MaxInt64, "9.22 EB"},
		{math.MaxUint16, "65.53 kB"},
		{math.MaxInt16, "32.76 kB"},
		{math.MaxInt32, "2.14 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, mustFormat(t, tt.size, WithSIUnits(true)))
		})
	}
}

func TestFormatSIAndBinaryDiverge(t *testing.T) {
	assert.Equal(t, "1 kB", mustFormat(t, 1000, WithSIUnits(true)))
	assert.Equal(t, "1000 B", mustFormat(t, 1000, WithSIUnits(false)))
	assert.Equal(t, "1000 B", mustFormat(t, 1000))
}

func TestFormatPlaces(t *testing.T) {
	assert.Equal(t, "930 B", mustFormat(t, 930, WithPlaces(5)))
	assert.Equal(t, "1.1 KiB", mustFormat(t, 1225, WithPlaces(1)))
	// 1027/1000 截断为 1.027；1.002 只出现在二进制情形（1027/1024）
	assert.Equal(t, "1.027 kB", mustFormat(t, 1027, WithSIUnits(true), WithPlaces(3)))
	assert.Equal(t, "1.002 KiB", mustFormat(t, 1027, WithPlaces(3)))
	assert.Equal(t, "1.99902 KiB", mustFormat(t, 2047, WithPlaces(5)))

	// places=0 时非整除结果只保留截断后的整数部分
	assert.Equal(t, "1 KiB", mustFormat(t, 2047, WithPlaces(0)))

	// 整除结果忽略小数位设置
	assert.Equal(t, "2 KiB", mustFormat(t, 2048, WithPlaces(6)))
}

func TestFormatTruncatesInsteadOfRounding(t *testing.T) {
	// 1.9990234375 KiB，四舍五入会得到 2.00
	assert.Equal(t, "1.99 KiB", mustFormat(t, 2047))
	// 0.9995 MB 以上的余数不会进位
	assert.Equal(t, "1.99 MB", mustFormat(t, 1_999_999, WithSIUnits(true)))
	assert.Equal(t, "9.9 kB", mustFormat(t, 9_999, WithSIUnits(true), WithPlaces(1)))
}

func TestFormatBeyond64Bits(t *testing.T) {
	pow := func(base, exp int64) *big.Int {
		return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
	}

	tests := []struct {
		name string
		size *big.Int
		opts []Option
		want string
	}{
		{"1 ZiB", pow(2, 70), nil, "1 ZiB"},
		{"1 YiB", pow(2, 80), nil, "1 YiB"},
		{"1024 YiB", pow(2, 90), nil, "1024 YiB"},
		{"1024 YiB + 1", new(big.Int).Add(pow(2, 90), big.NewInt(1)), nil, "1024.00 YiB"},
		{"1 ZB", pow(10, 21), []Option{WithSIUnits(true)}, "1 ZB"},
		{"1 YB", pow(10, 24), []Option{WithSIUnits(true)}, "1 YB"},
		{"1.5 YB", new(big.Int).Mul(pow(10, 23), big.NewInt(15)), []Option{WithSIUnits(true)}, "1.50 YB"},
		{"MaxUint64 binary", new(big.Int).SetUint64(math.MaxUint64), nil, "15.99 EiB"},
		{"MaxUint64 SI", new(big.Int).SetUint64(math.MaxUint64), []Option{WithSIUnits(true)}, "18.44 EB"},
		{"YiB - 1", new(big.Int).Sub(pow(2, 80), big.NewInt(1)), nil, "1023.99 ZiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.size, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDoesNotMutateInput(t *testing.T) {
	size := big.NewInt(2047)
	_, err := Format(size)
	require.NoError(t, err)
	assert.Equal(t, int64(2047), size.Int64())
}

func TestFormatUint64(t *testing.T) {
	s, err := FormatUint64(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, "15.99 EiB", s)

	s, err = FormatUint64(0)
	require.NoError(t, err)
	assert.Equal(t, "0 B", s)
}

func TestFormatSeparator(t *testing.T) {
	assert.Equal(t, "1,99 KiB", mustFormat(t, 2047, WithDecimalSeparator(',')))
	assert.Equal(t, "1 KiB", mustFormat(t, 1024, WithDecimalSeparator(',')))
	assert.Equal(t, "1023 B", mustFormat(t, 1023, WithDecimalSeparator(',')))
}

func TestFormatLocale(t *testing.T) {
	assert.Equal(t, "1,99 KiB", mustFormat(t, 2047, WithLocale(language.German)))
	assert.Equal(t, "1.99 KiB", mustFormat(t, 2047, WithLocale(language.English)))
	// 不做千分位分组
	assert.Equal(t, "1023 B", mustFormat(t, 1023, WithLocale(language.German)))
	// 显式分隔符优先
	assert.Equal(t, "1.99 KiB", mustFormat(t, 2047, WithLocale(language.German), WithDecimalSeparator('.')))
	assert.Equal(t, "1.99 KiB", mustFormat(t, 2047, WithDecimalSeparator('.'), WithLocale(language.German)))
}

func TestLocaleSeparator(t *testing.T) {
	assert.Equal(t, '.', LocaleSeparator(language.English))
	assert.Equal(t, ',', LocaleSeparator(language.German))
	assert.Equal(t, ',', LocaleSeparator(language.French))
	assert.Equal(t, '.', LocaleSeparator(language.Chinese))
}

func TestFormatErrors(t *testing.T) {
	_, err := Format(nil)
	assert.ErrorIs(t, err, ErrNilSize)

	_, err = Format(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeSize)

	_, err = FormatInt64(-1)
	assert.ErrorIs(t, err, ErrNegativeSize)

	_, err = FormatInt64(1, WithPlaces(-1))
	assert.ErrorIs(t, err, ErrInvalidPlaces)

	for _, sep := range []rune{'5', ' ', '\t', 0, '\uFFFD'} {
		_, err = FormatInt64(1, WithDecimalSeparator(sep))
		assert.ErrorIs(t, err, ErrInvalidSeparator, "sep %q", sep)
	}

	_, err = FormatInt64(1, WithSystem(UnitSystem(9)))
	assert.ErrorIs(t, err, ErrUnknownSystem)
}

func TestFormatterAccessors(t *testing.T) {
	f, err := New(WithSIUnits(true), WithPlaces(4), WithDecimalSeparator(','))
	require.NoError(t, err)
	assert.Equal(t, SI, f.System())
	assert.Equal(t, 4, f.Places())
	assert.Equal(t, ',', f.Separator())

	s, err := f.Format(big.NewInt(1_234_567))
	require.NoError(t, err)
	assert.Equal(t, "1,2345 MB", s)
}

func TestBytesString(t *testing.T) {
	assert.Equal(t, "0 B", Bytes(0).String())
	assert.Equal(t, "1.50 KiB", Bytes(1536).String())
	assert.Equal(t, "15.99 EiB", Bytes(math.MaxUint64).String())
}

// 输出总是以非负十进制数开头，以 18 个单位符号之一结尾。
func TestFormatShape(t *testing.T) {
	symbols := make(map[string]bool)
	for _, sys := range []UnitSystem{Binary, SI} {
		for _, s := range Symbols(sys) {
			symbols[s] = true
		}
	}
	require.Len(t, symbols, 17) // "B" 在两种单位制中共用

	sizes := []int64{0, 1, 999, 1000, 1023, 1024, 1500, 123_456_789, math.MaxInt32, math.MaxInt64}
	for _, sys := range []UnitSystem{Binary, SI} {
		for _, size := range sizes {
			s := mustFormat(t, size, WithSystem(sys))
			num, sym, ok := strings.Cut(s, " ")
			require.True(t, ok, s)
			assert.True(t, symbols[sym], s)
			assert.NotEmpty(t, num)
			assert.NotEqual(t, '-', rune(num[0]), s)
			for _, r := range num {
				assert.True(t, r == '.' || (r >= '0' && r <= '9'), s)
			}
		}
	}
}

// 小数位数只影响小数部分，不影响单位选择和整数部分。
func TestFormatPlacesDoNotChangeUnit(t *testing.T) {
	sizes := []int64{1, 1025, 2047, 1_048_577, 987_654_321, math.MaxInt64}
	for _, sys := range []UnitSystem{Binary, SI} {
		for _, size := range sizes {
			base := mustFormat(t, size, WithSystem(sys), WithPlaces(0))
			baseNum, baseSym, _ := strings.Cut(base, " ")
			for places := 1; places <= 6; places++ {
				s := mustFormat(t, size, WithSystem(sys), WithPlaces(places))
				num, sym, _ := strings.Cut(s, " ")
				assert.Equal(t, baseSym, sym, "size=%d places=%d", size, places)
				intPart, _, _ := strings.Cut(num, ".")
				assert.Equal(t, baseNum, intPart, "size=%d places=%d", size, places)
			}
		}
	}
}

// k*T（低于下一量级）总是输出不带小数的整数。
func TestFormatExactMultiples(t *testing.T) {
	for _, sys := range []UnitSystem{Binary, SI} {
		for tier := TierKilo; tier <= TierYotta; tier++ {
			threshold, err := Threshold(sys, tier)
			require.NoError(t, err)
			sym, err := Symbol(sys, tier)
			require.NoError(t, err)
			for _, k := range []int64{1, 2, 7, 999} {
				size := new(big.Int).Mul(threshold, big.NewInt(k))
				s, err := Format(size, WithSystem(sys), WithPlaces(3))
				require.NoError(t, err)
				assert.Equal(t, big.NewInt(k).String()+" "+sym, s)
			}
		}
	}
}
