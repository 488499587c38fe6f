package base

import (
	"time"

	"github.com/veldtlabs/dburl/logger"
)

// DBLogger wraps a logger.Logger and adds connection-specific logging
// methods. Targets passed in must already be redacted
type DBLogger struct {
	logger.Logger
}

// NewDBLogger creates a new database logger
func NewDBLogger(l logger.Logger) *DBLogger {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &DBLogger{Logger: l}
}

// LogConnect logs a connection attempt with its duration
func (l *DBLogger) LogConnect(engine, target string, duration time.Duration) {
	if l.GetLevel() >= logger.LogLevelDebug {
		l.Debug("connect %s (%v): %s", engine, duration, target)
	}
}

// LogPing logs a health check round trip with its duration
func (l *DBLogger) LogPing(engine string, duration time.Duration, err error) {
	if err != nil {
		l.Error("ping %s failed (%v): %v", engine, duration, err)
		return
	}
	if l.GetLevel() >= logger.LogLevelDebug {
		l.Debug("ping %s ok (%v)", engine, duration)
	}
}
