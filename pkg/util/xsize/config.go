package xsize

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// MaxConfigPlaces 配置文件中允许的最大小数位数。
// 仅约束 [Config]；[WithPlaces] 不设上限。
const MaxConfigPlaces = 64

// Config 格式化器的声明式配置，可由 xconf 从 YAML/JSON 加载。
type Config struct {
	// System 单位制：binary（默认）或 si。
	System string `koanf:"system" json:"system"`

	// Places 小数位数，默认 2，取值 [0, MaxConfigPlaces]。
	Places int `koanf:"places" json:"places"`

	// DecimalSeparator 小数分隔符，必须是单个字符。为空时使用 Locale 或 "."。
	DecimalSeparator string `koanf:"decimal_separator" json:"decimal_separator"`

	// Locale BCP 47 语言标签（如 "de"、"fr-CA"），用于推导小数分隔符。
	Locale string `koanf:"locale" json:"locale"`
}

// DefaultConfig 返回默认配置：二进制单位、2 位小数、"." 分隔符。
func DefaultConfig() Config {
	return Config{
		System: Binary.String(),
		Places: DefaultPlaces,
	}
}

// Options 将配置转换为选项列表。
func (c Config) Options() ([]Option, error) {
	system, err := ParseUnitSystem(c.System)
	if err != nil {
		return nil, err
	}
	if c.Places < 0 || c.Places > MaxConfigPlaces {
		return nil, fmt.Errorf("%w: %d, must be in [0, %d]", ErrInvalidPlaces, c.Places, MaxConfigPlaces)
	}
	opts := []Option{WithSystem(system), WithPlaces(c.Places)}

	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownLocale, c.Locale, err)
		}
		opts = append(opts, WithLocale(tag))
	}

	if c.DecimalSeparator != "" {
		sep, size := utf8.DecodeRuneInString(c.DecimalSeparator)
		if size != len(c.DecimalSeparator) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, c.DecimalSeparator)
		}
		opts = append(opts, WithDecimalSeparator(sep))
	}
	return opts, nil
}

// Validate 校验配置。
func (c Config) Validate() error {
	_, err := NewFormatter(c)
	return err
}

// NewFormatter 从配置创建格式化器。
func NewFormatter(c Config) (*Formatter, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...)
}
