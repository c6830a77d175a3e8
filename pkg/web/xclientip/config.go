package xclientip

import (
	"fmt"
	"slices"
	"strings"
)

// Config 解析器的声明式配置，可由 xconf 从 YAML/JSON 加载。
type Config struct {
	// Headers 候选头，按顺序检查。为 nil 时使用 [DefaultHeaderCandidates]。
	Headers []string `koanf:"headers" json:"headers"`
}

// DefaultConfig 返回使用默认候选头的配置。
func DefaultConfig() Config {
	return Config{Headers: slices.Clone(DefaultHeaderCandidates)}
}

// Validate 校验配置：候选头名称不能为空白。
func (c Config) Validate() error {
	for i, h := range c.Headers {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyHeader, i)
		}
	}
	return nil
}

// NewResolverFromConfig 从配置创建解析器，opts 在配置之后应用。
func NewResolverFromConfig(c Config, opts ...Option) (*Resolver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var base []Option
	if c.Headers != nil {
		headers := make([]string, len(c.Headers))
		for i, h := range c.Headers {
			headers[i] = strings.TrimSpace(h)
		}
		base = append(base, WithHeaders(headers...))
	}
	return NewResolver(append(base, opts...)...), nil
}
