package xlog

import (
	"fmt"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值与上限。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

// RotationConfig 按大小轮转的配置。零值字段使用默认值。
type RotationConfig struct {
	// MaxSizeMB 单个文件大小上限（MB），默认 [DefaultMaxSizeMB]。
	MaxSizeMB int `koanf:"max_size_mb" json:"max_size_mb"`

	// MaxBackups 保留的备份数，默认 [DefaultMaxBackups]。
	MaxBackups int `koanf:"max_backups" json:"max_backups"`

	// MaxAgeDays 备份保留天数，默认 [DefaultMaxAgeDays]。
	MaxAgeDays int `koanf:"max_age_days" json:"max_age_days"`

	// Compress 是否 gzip 压缩备份。
	Compress bool `koanf:"compress" json:"compress"`

	// LocalTime 备份文件名是否使用本地时间，默认 UTC。
	LocalTime bool `koanf:"local_time" json:"local_time"`
}

func (c RotationConfig) withDefaults() RotationConfig {
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = DefaultMaxBackups
	}
	if c.MaxAgeDays == 0 {
		c.MaxAgeDays = DefaultMaxAgeDays
	}
	return c
}

func (c RotationConfig) validate() error {
	switch {
	case c.MaxSizeMB < 0 || c.MaxSizeMB > maxSizeMB:
		return fmt.Errorf("%w: max_size_mb %d out of range [0, %d]", ErrInvalidRotation, c.MaxSizeMB, maxSizeMB)
	case c.MaxBackups < 0 || c.MaxBackups > maxBackups:
		return fmt.Errorf("%w: max_backups %d out of range [0, %d]", ErrInvalidRotation, c.MaxBackups, maxBackups)
	case c.MaxAgeDays < 0 || c.MaxAgeDays > maxAgeDays:
		return fmt.Errorf("%w: max_age_days %d out of range [0, %d]", ErrInvalidRotation, c.MaxAgeDays, maxAgeDays)
	}
	return nil
}

// newRotator 创建 lumberjack 写入器。文件在首次写入时创建。
func newRotator(filename string, cfg RotationConfig) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidRotation)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	return &lumberjack.Logger{
		Filename:   filepath.Clean(filename),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}, nil
}
