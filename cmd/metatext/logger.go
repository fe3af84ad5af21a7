package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLogger *zap.Logger

// newLogger builds a JSON logger writing to w. Verbosity 0 logs info and
// above; each extra level enables the matching logr V level.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)
	zapLogger = zap.New(core, zap.AddCaller())
	return zapr.NewLogger(zapLogger)
}

func syncLogger() {
	if zapLogger == nil {
		return
	}
	if err := zapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError reports errors returned when syncing a pipe or TTY.
func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF)
}
