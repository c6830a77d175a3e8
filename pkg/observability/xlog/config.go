package xlog

// Config 日志的声明式配置，可由 xconf 从 YAML/JSON 加载。
type Config struct {
	// Level debug/info/warn/error，默认 info。
	Level string `koanf:"level" json:"level"`

	// Format text 或 json，默认 text。
	Format string `koanf:"format" json:"format"`

	// AddSource 是否记录调用位置。
	AddSource bool `koanf:"add_source" json:"add_source"`

	// File 日志文件路径，为空时输出到 stderr。
	File string `koanf:"file" json:"file"`

	// Rotation 文件轮转配置，仅 File 非空时生效。
	Rotation RotationConfig `koanf:"rotation" json:"rotation"`
}

// DefaultConfig 返回默认配置：info 级别、text 格式、stderr。
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// Validate 校验配置，不创建文件。
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if err := New().SetFormat(c.Format).err; err != nil {
		return err
	}
	if c.File != "" {
		return c.Rotation.validate()
	}
	return nil
}

// NewFromConfig 从配置创建 Logger。
func NewFromConfig(c Config) (LoggerWithLevel, func() error, error) {
	b := New().
		SetLevelString(c.Level).
		SetFormat(c.Format).
		SetAddSource(c.AddSource)
	if c.File != "" {
		b = b.SetRotation(c.File, c.Rotation)
	}
	return b.Build()
}
