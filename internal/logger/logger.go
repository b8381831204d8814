package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a JSON production logger at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered entries; errors from syncing stdout are ignored.
func Sync() {
	_ = Log.Sync()
}
