// Package zaplogger implements ports.Logger with zap, writing JSON records to
// a log file so a session can be audited after the fact.
package zaplogger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/filemanager/pkg/ports"
)

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	OutputPaths []string
	SessionID   string
}

// Logger adapts a zap.SugaredLogger to ports.Logger.
type Logger struct {
	sugar *zap.SugaredLogger
	base  *zap.Logger
}

// New builds a JSON logger from cfg.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          "json",
		EncoderConfig:     encoderConfig(),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	base, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	if cfg.SessionID != "" {
		base = base.With(zap.String("session", cfg.SessionID))
	}

	return FromZap(base), nil
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{sugar: z.Sugar(), base: z}
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

// WithComponent names the logger after component.
func (l *Logger) WithComponent(component string) ports.Logger {
	return FromZap(l.base.Named(component))
}

// parseLevel converts string level to zapcore.Level. "quiet" maps above fatal.
func parseLevel(level string) (zapcore.Level, error) {
	if level == "quiet" {
		return zapcore.FatalLevel + 1, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "component",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

var _ ports.Logger = (*Logger)(nil)
