// Package logging builds the sugared zap logger shared by the CLI
// commands.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the structured logger handed to commands. It exposes the
// sugared zap API (Infow, Warnw, Debugw, Errorw).
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger on stderr. Verbose enables
// debug-level output.
func NewLogger(verbose bool) *Logger {
	return NewLoggerWithFile(verbose, "")
}

// NewLoggerWithFile is NewLogger with an optional rotating file sink: when
// logFile is non-empty, a JSON copy of every record is appended there and
// rotated at 10 MB, keeping three backups for four weeks.
func NewLoggerWithFile(verbose bool, logFile string) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if logFile != "" {
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			sink,
			level,
		))
	}

	return &Logger{zap.New(zapcore.NewTee(cores...)).Sugar()}
}
