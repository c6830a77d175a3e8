package xconf

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/omeyang/xcommons/pkg/observability/xlog"
	"github.com/omeyang/xcommons/pkg/util/xsize"
	"github.com/omeyang/xcommons/pkg/web/xclientip"
)

// Settings 工具集的聚合配置。
type Settings struct {
	// Size 字节数格式化配置。
	Size xsize.Config `koanf:"size" json:"size"`

	// ClientIP 客户端 IP 解析配置。
	ClientIP xclientip.Config `koanf:"client_ip" json:"client_ip"`

	// Log 日志配置。
	Log xlog.Config `koanf:"log" json:"log"`
}

// DefaultSettings 返回默认配置。
// ClientIP.Headers 为 nil，表示使用 [xclientip.DefaultHeaderCandidates]。
func DefaultSettings() Settings {
	return Settings{
		Size: xsize.DefaultConfig(),
		Log:  xlog.DefaultConfig(),
	}
}

// Validate 校验全部子配置，返回的错误包装 [ErrInvalidSettings] 与各子包的哨兵错误。
func (s Settings) Validate() error {
	var errs []error
	if err := s.Size.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("size: %w", err))
	}
	if err := s.ClientIP.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("client_ip: %w", err))
	}
	if err := s.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// Formatter 按 Size 配置创建字节数格式化器。
func (s Settings) Formatter() (*xsize.Formatter, error) {
	return xsize.NewFormatter(s.Size)
}

// Resolver 按 ClientIP 配置创建客户端 IP 解析器，opts 在配置之后应用。
func (s Settings) Resolver(opts ...xclientip.Option) (*xclientip.Resolver, error) {
	return xclientip.NewResolverFromConfig(s.ClientIP, opts...)
}

// Logger 按 Log 配置创建 Logger，返回的 cleanup 关闭日志文件。
func (s Settings) Logger() (xlog.LoggerWithLevel, func() error, error) {
	return xlog.NewFromConfig(s.Log)
}

// settingsDefaults 将默认配置序列化为默认值层。
// 字段只含基本类型，序列化不会失败。
var settingsDefaults, _ = json.Marshal(DefaultSettings())

// Load 从文件加载配置：默认值 → 文件内容 → 校验。
func Load(path string) (*Settings, error) {
	cfg, err := New(path, WithDefaults(settingsDefaults))
	if err != nil {
		return nil, err
	}
	return decodeSettings(cfg)
}

// LoadBytes 从字节数据加载配置，语义同 [Load]。
func LoadBytes(data []byte, format Format) (*Settings, error) {
	cfg, err := NewFromBytes(data, format, WithDefaults(settingsDefaults))
	if err != nil {
		return nil, err
	}
	return decodeSettings(cfg)
}

// decodeSettings 将 Config 反序列化为 Settings 并校验。
func decodeSettings(cfg Config) (*Settings, error) {
	s := DefaultSettings()
	if err := cfg.Unmarshal("", &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
