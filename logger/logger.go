// Package logger provides structured logging for the reflection transformer.
//
// The transformer runs inside a host compiler pass, so all output goes to
// standard error and stays quiet by default: one activation notice on first
// load and warnings for unparseable configuration files. Everything else is
// debug-level.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger
)

func init() {
	// Safe no-op logger at package load time so the transformer never panics
	// when used before Initialize.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger writing to standard error at the given
// level. The host's own streams carry program output; the transformer must
// not touch stdout.
func Initialize(level zapcore.Level) error {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // compiler passes are offline; timestamps are noise
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	Logger = zap.New(core).Sugar()
	return nil
}
