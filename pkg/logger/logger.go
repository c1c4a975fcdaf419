package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs the host-process logger. This is zap-based operational
// logging for tools and host binaries; the shim's own diagnostic channel
// lives in internal/core/services/diagnostics and has its own fixed wire
// format.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return log.Sugar()
}
