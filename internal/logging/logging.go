// Package logging wraps zap for the binaries in this module. The library
// packages never log; callers attach errors and results as fields instead.
package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

type LoggerCtxKey struct{}

type zapLogger interface {
	Debug(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Sync() error
	Warn(msg string, fields ...zapcore.Field)
	With(fields ...zapcore.Field) *zap.Logger
}

type Logger struct {
	log zapLogger
}

// Config selects the encoder and minimum level.
type Config struct {
	// Production switches to the JSON production encoder. It is also forced
	// by GO_ENVIRONMENT=production.
	Production bool
	Level      zapcore.Level
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func build(cfg Config) (*zap.Logger, error) {
	opts := []Option{
		zap.AddCallerSkip(1),
	}

	var logCfg zap.Config
	if cfg.Production || insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.Level = zap.NewAtomicLevelAt(cfg.Level)
	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return logCfg.Build(opts...)
}

// New returns the process-wide default logger (development encoder, debug level).
func New() *Logger {
	logOnce.Do(func() {
		logger, err := build(Config{Level: zapcore.DebugLevel})
		if err != nil {
			log.Panicf("could not create logger: %v", err)
		}

		cachedLogger = &Logger{log: logger}
	})

	return cachedLogger
}

// NewWithConfig builds a dedicated logger; it does not touch the default one.
func NewWithConfig(cfg Config) (*Logger, error) {
	logger, err := build(cfg)
	if err != nil {
		return nil, err
	}

	return &Logger{log: logger}, nil
}

// Wrap adapts an existing zap logger, e.g. one built on an observer core in tests.
func Wrap(logger *zap.Logger) *Logger {
	return &Logger{log: logger}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{
		log: l.log.With(fields...),
	}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}
