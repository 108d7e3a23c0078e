package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config 客户端运行配置（来自环境变量）
type Config struct {
	LogFile    string `env:"NEONCITY_LOG_FILE" envDefault:"neoncity.log"`
	LogLevel   string `env:"NEONCITY_LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"NEONCITY_LOG_CONSOLE" envDefault:"false"`

	TargetFPS  int   `env:"NEONCITY_TARGET_FPS" envDefault:"60"`
	Seed       int64 `env:"NEONCITY_SEED" envDefault:"0"` // 0 表示按时间取种子
	InputQueue int   `env:"NEONCITY_INPUT_QUEUE" envDefault:"256"`

	WindowWidth  int  `env:"NEONCITY_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int  `env:"NEONCITY_WINDOW_HEIGHT" envDefault:"720"`
	Debug        bool `env:"NEONCITY_DEBUG" envDefault:"false"`
}

// ParseEnv 从环境变量解析到 target（env/envDefault 标签）
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load 解析并校验配置
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 检查取值范围
func (c Config) Validate() error {
	if c.TargetFPS < 1 || c.TargetFPS > 240 {
		return fmt.Errorf("target fps %d out of range [1,240]", c.TargetFPS)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.InputQueue <= 0 {
		return fmt.Errorf("input queue must be positive, got %d", c.InputQueue)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
