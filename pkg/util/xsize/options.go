package xsize

import (
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultPlaces 默认保留的小数位数。
	DefaultPlaces = 2

	// DefaultSeparator 默认小数分隔符。
	DefaultSeparator = '.'
)

// options 格式化选项。
type options struct {
	system       UnitSystem
	places       int
	separator    rune
	separatorSet bool
	locale       *language.Tag
}

// Option 定义格式化选项函数类型。
type Option func(*options)

func defaultOptions() *options {
	return &options{
		system:    Binary,
		places:    DefaultPlaces,
		separator: DefaultSeparator,
	}
}

// WithSIUnits 选择单位制：true 为 SI（1000 进位），false 为二进制（1024 进位）。
func WithSIUnits(useSI bool) Option {
	return func(o *options) {
		if useSI {
			o.system = SI
		} else {
			o.system = Binary
		}
	}
}

// WithSystem 直接指定单位制。
func WithSystem(system UnitSystem) Option {
	return func(o *options) {
		o.system = system
	}
}

// WithPlaces 设置小数位数，默认 [DefaultPlaces]。
// 仅对非整除的结果生效；整字节和整除结果始终不带小数。
func WithPlaces(places int) Option {
	return func(o *options) {
		o.places = places
	}
}

// WithDecimalSeparator 设置小数分隔符。
// 显式设置的分隔符优先于 [WithLocale] 推导出的分隔符。
func WithDecimalSeparator(sep rune) Option {
	return func(o *options) {
		o.separator = sep
		o.separatorSet = true
	}
}

// WithLocale 按语言标签推导小数分隔符，如 language.German 为 ','。
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = &tag
	}
}

// resolve 校验选项并计算最终的分隔符。
func (o *options) resolve() error {
	if !o.system.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownSystem, o.system)
	}
	if o.places < 0 || o.places > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrInvalidPlaces, o.places)
	}
	if !o.separatorSet && o.locale != nil {
		o.separator = LocaleSeparator(*o.locale)
	}
	return validateSeparator(o.separator)
}

func validateSeparator(sep rune) error {
	if sep == 0 || sep == unicode.ReplacementChar || unicode.IsDigit(sep) || unicode.IsSpace(sep) {
		return fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
	}
	return nil
}

// LocaleSeparator 返回 tag 对应的小数分隔符。
// 通过 CLDR 数据格式化 1.5 并取第一个非数字字符，无法推导时返回 [DefaultSeparator]。
func LocaleSeparator(tag language.Tag) rune {
	p := message.NewPrinter(tag)
	s := p.Sprintf("%v", number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	for _, r := range s {
		if unicode.IsDigit(r) {
			continue
		}
		// 跳过双向控制字符等不可见格式符
		if unicode.Is(unicode.Cf, r) {
			continue
		}
		return r
	}
	return DefaultSeparator
}
