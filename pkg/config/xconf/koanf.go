package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// koanfConfig 是 Config 接口的 koanf 实现。
type koanfConfig struct {
	k      atomic.Pointer[koanf.Koanf]
	path   string
	format Format
	opts   *Options
	// reloadMu 串行化 Reload，避免并发重载导致配置回退。
	reloadMu sync.Mutex
}

// New 从文件路径创建配置实例。
// 根据文件扩展名检测格式（.yaml/.yml 或 .json）。
func New(path string, opts ...Option) (Config, error) {
	return newFileConfig(path, opts...)
}

func newFileConfig(path string, opts ...Option) (*koanfConfig, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	c := &koanfConfig{path: path, format: format, opts: applyOptions(opts)}
	k, err := c.load()
	if err != nil {
		return nil, err
	}
	c.k.Store(k)
	return c, nil
}

// NewFromBytes 从字节数据创建配置实例，需显式指定格式。
// 空数据得到空配置，Unmarshal 保持目标结构体原值。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c := &koanfConfig{format: format, opts: applyOptions(opts)}
	k := koanf.New(c.opts.Delim)
	if err := loadLayers(k, format, c.opts.defaults, data); err != nil {
		return nil, err
	}
	c.k.Store(k)
	return c, nil
}

// Client 返回当前的 koanf 实例快照。
func (c *koanfConfig) Client() *koanf.Koanf {
	return c.k.Load()
}

// Unmarshal 将指定路径的配置反序列化到目标结构体。
func (c *koanfConfig) Unmarshal(path string, target any) error {
	if err := c.k.Load().UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: c.opts.Tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新加载配置文件。
func (c *koanfConfig) Reload() error {
	if c.path == "" {
		return ErrNotFromFile
	}

	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	k, err := c.load()
	if err != nil {
		return err
	}
	c.k.Store(k)
	return nil
}

// load 读取文件并构建新的 koanf 实例。
func (c *koanfConfig) load() (*koanf.Koanf, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k := koanf.New(c.opts.Delim)
	if err := loadLayers(k, c.format, c.opts.defaults, data); err != nil {
		return nil, err
	}
	return k, nil
}

// Path 返回配置文件路径。
func (c *koanfConfig) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *koanfConfig) Format() Format {
	return c.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// DetectFormat 根据文件扩展名检测配置格式。
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

// IsValid 报告格式是否受支持。
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

func (f Format) parser() koanf.Parser {
	if f == FormatJSON {
		return json.Parser()
	}
	return yaml.Parser()
}

// loadLayers 依次加载默认值（JSON）与数据，后加载的层覆盖先加载的层。
func loadLayers(k *koanf.Koanf, format Format, defaults, data []byte) error {
	if len(defaults) > 0 {
		if err := k.Load(rawbytes.Provider(defaults), json.Parser()); err != nil {
			return fmt.Errorf("%w: defaults: %w", ErrParseFailed, err)
		}
	}
	if len(data) == 0 {
		return nil
	}
	if err := k.Load(rawbytes.Provider(data), format.parser()); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
