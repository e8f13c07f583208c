// Package logging holds the logger factory shared by the pixconv packages.
// Levels follow the pion conventions, e.g. PION_LOG_DEBUG=pixconv/convert or
// PION_LOG_TRACE=all.
package logging

import (
	"sync"

	"github.com/pion/logging"
)

var (
	loggerFactory = logging.NewDefaultLoggerFactory()

	mu      sync.Mutex
	loggers []*logging.DefaultLeveledLogger
)

// NewLogger returns a leveled logger for scope.
func NewLogger(scope string) logging.LeveledLogger {
	l := loggerFactory.NewLogger(scope)
	if d, ok := l.(*logging.DefaultLeveledLogger); ok {
		mu.Lock()
		loggers = append(loggers, d)
		mu.Unlock()
	}
	return l
}

// SetLevel overrides the level of every logger created so far.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		l.SetLevel(level)
	}
}
