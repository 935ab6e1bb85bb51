package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig is the console-only logging setup: no file sink, since the
// transform core has nothing that needs to survive a single process
// invocation.
type LoggingConfig struct {
	Level string `json:"level,omitempty" validate:"omitempty,oneof=none debug normal"`
}

// NewLogger builds the zap.Logger the debug CLI and library entry points
// thread through the pipeline. An empty or "none" level returns a no-op
// logger rather than erroring, so callers never need a separate
// "logging disabled" branch.
func NewLogger(level string) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if EnableColorOutput(os.Stderr) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encoder := zapcore.NewConsoleEncoder(ec)

	var enabler zap.LevelEnablerFunc
	switch level {
	case "debug":
		enabler = func(lvl zapcore.Level) bool { return lvl >= zapcore.DebugLevel }
	case "normal":
		enabler = func(lvl zapcore.Level) bool { return lvl >= zapcore.InfoLevel }
	default:
		return zap.NewNop()
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), enabler)
	return zap.New(core).Named("stoop")
}
