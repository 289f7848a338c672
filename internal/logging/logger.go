// Package logging provides the console logger used by every submerge
// component: leveled, optionally colored, with an optional plain-text file
// sink. It is a thin facade over zap so callers keep printf-style methods.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/submerge/internal/config"
	"github.com/backmassage/submerge/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
// ERROR lines go to stderr, everything else to stdout.
type Logger struct {
	z     *zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{}

	console := zapcore.NewConsoleEncoder(encoderConfig(term.Enabled()))
	belowError := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl < zapcore.ErrorLevel })
	atLeastError := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= zapcore.ErrorLevel })

	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.AddSync(stdout), belowError),
		zapcore.NewCore(console.Clone(), zapcore.AddSync(stderr), atLeastError),
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		plain := zapcore.NewConsoleEncoder(encoderConfig(false))
		cores = append(cores, zapcore.NewCore(plain, zapcore.AddSync(f), zapcore.DebugLevel))
	}

	l.z = zap.New(zapcore.NewTee(cores...))
	l.sugar = l.z.Sugar()
	return l, nil
}

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() *Logger {
	z := zap.NewNop()
	return &Logger{z: z, sugar: z.Sugar()}
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      levelEncoder(color),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// levelEncoder renders "[INFO]" style labels, colored when enabled.
func levelEncoder(color bool) zapcore.LevelEncoder {
	return func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + lvl.CapitalString() + "]"
		if !color {
			enc.AppendString(label)
			return
		}
		c := term.Blue
		switch lvl {
		case zapcore.DebugLevel:
			c = term.Cyan
		case zapcore.WarnLevel:
			c = term.Yellow
		case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
			c = term.Red
		}
		enc.AppendString(c + label + term.NC)
	}
}

// Close flushes buffered output and closes the log file if one was opened.
func (l *Logger) Close() error {
	// Sync on a terminal returns EINVAL on some platforms; nothing to report.
	_ = l.z.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Success logs a completed step at INFO level, green when colors are on.
func (l *Logger) Success(format string, args ...interface{}) {
	l.sugar.Infof(term.Green+format+term.NC, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.sugar.Debugf(format, args...)
}
