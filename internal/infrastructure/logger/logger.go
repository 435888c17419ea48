package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// New 按配置创建zap日志器
// 支持:
// 1. level: debug | info | warn | error
// 2. format: console(开发) | json(生产,便于ELK/Loki检索)
// 3. output: stdout | stderr | 文件路径
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	encoding := cfg.Format
	switch encoding {
	case "":
		encoding = "console"
	case "console", "json":
	default:
		return nil, fmt.Errorf("无效的日志格式: %s", cfg.Format)
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !cfg.EnableCaller,
		DisableStacktrace: level > zapcore.DebugLevel,
	}

	return zcfg.Build()
}

// NewForConfig wire provider
func NewForConfig(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		// stdout/stderr上Sync会返回EINVAL,忽略
		_ = log.Sync()
	}
	return log, cleanup, nil
}
