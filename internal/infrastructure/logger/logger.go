// Package logger 提供进程级结构化日志组件
//
// 设计说明：
// 1. 四个级别：Debug/Info/Warn/Error，底层委托给zap
// 2. 不做全局单例：Logger在main中构造一次，按参数注入到每个使用方
//    （Handler、Seeder等），便于测试时替换
// 3. 输出到文件时用lumberjack做滚动，避免单文件无限增长
// 4. zap本身对并发调用安全，无需额外加锁
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookadmin/internal/infrastructure/config"
)

// Logger 包装zap.Logger，提供统一的日志接口
type Logger struct {
	zap *zap.Logger
}

// New 按配置创建日志组件
func New(cfg *config.Config) (*Logger, error) {
	lc := cfg.Log

	level := parseLevel(lc.Level)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if lc.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	writer, err := openOutput(lc)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), level)

	opts := []zap.Option{}
	if lc.EnableCaller {
		// AddCallerSkip(1)：跳过本包的包装函数，定位到真正的调用方
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &Logger{zap: zap.New(core, opts...)}, nil
}

// NewNop 创建丢弃所有输出的Logger（测试用）
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// openOutput 解析输出目标
// stdout/stderr直接返回，其他值视为文件路径并启用滚动
func openOutput(lc config.LogConfig) (io.Writer, error) {
	switch lc.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		if err := os.MkdirAll(filepath.Dir(lc.Output), 0o755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		return &lumberjack.Logger{
			Filename:   lc.Output,
			MaxSize:    lc.MaxSize,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAge,
			Compress:   lc.Compress,
		}, nil
	}
}

// parseLevel 字符串级别 → zap级别，未知值按info处理
func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Named 派生带名称的子Logger（如"seed"、"AuthorHandler"）
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name)}
}

// Debug 调试日志
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info 普通日志
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn 警告日志
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error 错误日志
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// Sync 刷新缓冲（进程退出前调用）
func (l *Logger) Sync() {
	_ = l.zap.Sync()
}
