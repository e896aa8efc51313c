package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide application logger. It is a no-op until Init runs.
var Log = zap.NewNop().Sugar()

// Init builds the logger. release selects JSON production output,
// otherwise a human-readable development console.
func Init(release bool) {
	var config zap.Config
	if release {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.MessageKey = "message"
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		l = zap.NewExample()
	}
	Log = l.Sugar()
}

// Set replaces the logger, mainly for tests.
func Set(l *zap.Logger) {
	Log = l.Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
