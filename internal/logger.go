package internal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// The core logs nothing unless a logger is installed. Stored atomically so the
// driver can swap it at any time.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger installs the logger used by the pipelines. Pass nil to silence
// logging again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
