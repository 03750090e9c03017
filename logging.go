package gekko

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes leveled, timestamped lines through charmbracelet/log.
type DefaultLogger struct {
	out *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewDefaultLoggerTo(os.Stderr, prefix, debug)
}

// NewDefaultLoggerTo is NewDefaultLogger with an explicit destination.
func NewDefaultLoggerTo(w io.Writer, prefix string, debug bool) *DefaultLogger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMicro,
		Prefix:          prefix,
	})
	dl := &DefaultLogger{out: l}
	dl.SetDebug(debug)
	return dl
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.out.GetLevel() <= log.DebugLevel
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	if enabled {
		l.out.SetLevel(log.DebugLevel)
	} else {
		l.out.SetLevel(log.InfoLevel)
	}
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.out.Debugf(format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.out.Infof(format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.out.Warnf(format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.out.Errorf(format, args...) }

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger := NewDefaultLogger(m.Prefix, m.Debug)
	app.addResources(logger)
}

// Nop logger and App helper accessor

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
