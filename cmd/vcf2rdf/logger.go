package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelEnabler maps the -v count to enabled levels. Errors are always on;
// -v adds statistics (info), -vv adds warnings, -vvv adds debug.
func levelEnabler(verbose int) zap.LevelEnablerFunc {
	return func(l zapcore.Level) bool {
		switch {
		case l >= zapcore.ErrorLevel:
			return true
		case l == zapcore.WarnLevel:
			return verbose >= 2
		case l == zapcore.InfoLevel:
			return verbose >= 1
		default:
			return verbose >= 3
		}
	}
}

// newLogger builds a console logger writing to stderr, or to logDev when set.
// The returned closer releases the log device.
func newLogger(verbose int, logDev string) (*zap.Logger, func() error, error) {
	sink := zapcore.Lock(os.Stderr)
	closer := func() error { return nil }

	if logDev != "" {
		f, err := os.OpenFile(logDev, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log device: %w", err)
		}
		sink = zapcore.Lock(f)
		closer = f.Close
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, levelEnabler(verbose))

	return zap.New(core), closer, nil
}
