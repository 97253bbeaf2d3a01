package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 诊断日志的配置，File为空时只输出到stderr
type Config struct {
	Level      string
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

var (
	mu     sync.RWMutex
	global = New(os.Stderr, zapcore.InfoLevel)
)

// New 创建一个写到w的console格式logger
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	return zap.New(zapcore.NewCore(encoder(), zapcore.AddSync(w), level))
}

func encoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Setup 按配置替换全局logger，返回的cleanup用于关闭日志文件并恢复默认logger
func Setup(cfg Config) (func() error, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(), zapcore.Lock(os.Stderr), level),
	}
	var file *lumberjack.Logger
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder(), zapcore.AddSync(file), level))
	}

	l := zap.New(zapcore.NewTee(cores...))
	Set(l)
	l.Debug("logger.initialized", zap.String("level", level.String()), zap.String("file", cfg.File))

	cleanup := func() error {
		_ = l.Sync()
		Set(New(os.Stderr, zapcore.InfoLevel))
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return cleanup, nil
}

// L 返回全局logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set 替换全局logger，nil会被忽略
func Set(l *zap.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	global = l
	mu.Unlock()
}
