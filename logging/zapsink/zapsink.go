// Package zapsink adapts maptool/logging to a zap-backed production sink,
// tee'ing structured output to stdout and a rotated log file via lumberjack.
package zapsink

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"maptool/logging"
)

// FileConfig configures the rotated log file written by lumberjack.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func (c FileConfig) normalized() FileConfig {
	if c.Path == "" {
		c.Path = "maptool.log"
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 50
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 5
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 28
	}
	return c
}

// Sink writes events through a zap.Logger, tee'd across console and file
// cores at independently configurable levels.
type Sink struct {
	logger *zap.Logger
	writer *lumberjack.Logger
}

// New builds a Sink logging at consoleLevel to stdout and at fileLevel to the
// rotated file described by cfg.
func New(cfg FileConfig, consoleLevel, fileLevel zapcore.Level) (*Sink, error) {
	cfg = cfg.normalized()

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	jsonEncoder := zapcore.NewJSONEncoder(encoderCfg)

	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), consoleLevel),
		zapcore.NewCore(jsonEncoder, zapcore.AddSync(writer), fileLevel),
	)

	return &Sink{
		logger: zap.New(core),
		writer: writer,
	}, nil
}

// Write implements logging.Sink.
func (s *Sink) Write(event logging.Event) error {
	fields := make([]zap.Field, 0, len(event.Extra)+3)
	fields = append(fields, zap.String("event_type", string(event.Type)))
	fields = append(fields, zap.String("category", string(event.Category)))
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	for k, v := range event.Extra {
		fields = append(fields, zap.Any(k, v))
	}

	logger := s.logger.WithOptions(zap.AddCallerSkip(0))
	switch event.Severity {
	case logging.SeverityDebug:
		logger.Debug(string(event.Type), fields...)
	case logging.SeverityWarn:
		logger.Warn(string(event.Type), fields...)
	case logging.SeverityError:
		logger.Error(string(event.Type), fields...)
	default:
		logger.Info(string(event.Type), fields...)
	}
	return nil
}

// Close implements logging.Sink.
func (s *Sink) Close(context.Context) error {
	_ = s.logger.Sync()
	return s.writer.Close()
}

func parseLevel(level string) zapcore.Level {
	switch level {
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

// ParseLevel exposes parseLevel for config-driven construction.
func ParseLevel(level string) zapcore.Level { return parseLevel(level) }
