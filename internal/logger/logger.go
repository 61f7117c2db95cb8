package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init configures the process-wide logger. Levels are "debug", "info",
// "warn", and "error"; anything else falls back to info. Log output goes to
// stderr so command output on stdout stays machine-readable.
func Init(level string) {
	once.Do(func() {
		var zapLevel zapcore.Level
		switch level {
		case "debug":
			zapLevel = zapcore.DebugLevel
		case "warn":
			zapLevel = zapcore.WarnLevel
		case "error":
			zapLevel = zapcore.ErrorLevel
		default:
			zapLevel = zapcore.InfoLevel
		}

		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			zapLevel,
		)
		global = zap.New(core).Sugar()
	})
}

// L returns the process-wide logger, initializing it at info level if Init
// was never called.
func L() *zap.SugaredLogger {
	if global == nil {
		Init("info")
	}
	return global
}
