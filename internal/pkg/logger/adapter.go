package logger

import (
	"log/slog"

	"starknet_balance_checker/internal/app/port"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
)

// slogAdapter implements port.Logger on top of an slog.Logger.
// A nil logger means "use the package-level logger".
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter returns a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// NewNop returns a port.Logger that discards everything.
func NewNop() port.Logger {
	handler := slogzap.Option{Logger: zap.NewNop()}.NewZapHandler()
	return &slogAdapter{l: slog.New(handler)}
}

func (a *slogAdapter) Info(msg string, args ...any) {
	if a.l != nil {
		a.l.Info(msg, args...)
		return
	}
	Info(msg, args...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	if a.l != nil {
		a.l.Debug(msg, args...)
		return
	}
	Debug(msg, args...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	if a.l != nil {
		a.l.Warn(msg, args...)
		return
	}
	Warn(msg, args...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	if a.l != nil {
		a.l.Error(msg, args...)
		return
	}
	Error(msg, args...)
}
