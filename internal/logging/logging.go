// Package logging builds the shared zap logger for the non-interactive
// commands. Each subsystem gets a named child logger; every entry carries
// a per-process session id so multi-invocation shell sessions can be told
// apart in aggregated logs. The interactive browser owns the terminal and
// does not log.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem child logger.
type Category string

const (
	CategoryLoader  Category = "loader"
	CategoryModel   Category = "model"
	CategoryAdvisor Category = "advisor"
	CategoryExport  Category = "export"
)

// Logger wraps the root zap logger and hands out category children.
type Logger struct {
	root      *zap.Logger
	sessionID string
}

// New builds a production-configured logger. verbose lowers the level to
// debug, matching the global --verbose flag.
func New(verbose bool) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	sessionID := uuid.NewString()
	root, err := cfg.Build(zap.Fields(zap.String("session", sessionID)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{root: root, sessionID: sessionID}, nil
}

// Nop returns a logger that discards everything, for tests and the TUI
// path.
func Nop() *Logger {
	return &Logger{root: zap.NewNop(), sessionID: "nop"}
}

// SessionID returns this process's log correlation id.
func (l *Logger) SessionID() string { return l.sessionID }

// For returns the named child logger for a category.
func (l *Logger) For(cat Category) *zap.Logger {
	return l.root.Named(string(cat))
}

// Sync flushes buffered entries. Safe to call on exit; sync errors on
// stderr sinks are ignored.
func (l *Logger) Sync() {
	_ = l.root.Sync()
}
