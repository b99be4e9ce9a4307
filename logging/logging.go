package logging

import (
	"github.com/gobuffalo/nulls"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
)

// Config is the configuration for the logger created with NewLogger.
type Config struct {
	// StdoutLogLevel is the minimum level for log entries written to Stdout.
	StdoutLogLevel zapcore.Level `json:"stdout_log_level"`
	// HighPriorityOutput is the optional file path for warnings and errors.
	HighPriorityOutput nulls.String `json:"high_priority_output"`
	// DebugOutput is the optional file path for all log entries.
	DebugOutput nulls.String `json:"debug_output"`
	// MaxSize is the maximum size in megabytes of log files before they get
	// rotated.
	MaxSize int `json:"max_size"`
	// KeepDays is the number of days to keep rotated log files.
	KeepDays int `json:"keep_days"`
}

// Outputs allows overwriting the standard outputs used by NewLogger.
type Outputs struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultOutputs uses os.Stdout and os.Stderr.
func DefaultOutputs() Outputs {
	return Outputs{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewLogger creates a zap.Logger writing to the given Outputs and the optional
// log files from the Config.
func NewLogger(config Config, outputs Outputs) *zap.Logger {
	encConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
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
	cores := make([]zapcore.Core, 0)
	// Setup stdout logger with colorful level output.
	stdOutEncConfig := encConfig
	stdOutEncConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(stdOutEncConfig),
		zapcore.Lock(zapcore.AddSync(outputs.Stdout)),
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= config.StdoutLogLevel && level < zap.ErrorLevel
		})))
	// Setup error logger.
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(encConfig),
		zapcore.Lock(zapcore.AddSync(outputs.Stderr)),
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= zap.ErrorLevel
		})))
	// Setup high priority logger.
	if config.HighPriorityOutput.Valid {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: config.HighPriorityOutput.String,
				MaxSize:  config.MaxSize,
				MaxAge:   config.KeepDays,
			}),
			zap.LevelEnablerFunc(func(level zapcore.Level) bool {
				return level >= zap.WarnLevel
			})))
	}
	// Setup debug logger.
	if config.DebugOutput.Valid {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: config.DebugOutput.String,
				MaxSize:  config.MaxSize,
				MaxAge:   config.KeepDays,
			}),
			zap.LevelEnablerFunc(func(level zapcore.Level) bool {
				return level >= zap.DebugLevel
			})))
	}
	// Combine.
	return zap.New(zapcore.NewTee(cores...))
}
