package app

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the component logger used across the pipeline.
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Warnf(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger writes leveled, timestamped lines through charmbracelet/log.
type CharmLogger struct{ l *log.Logger }

func NewLogger(w io.Writer, debug bool) CharmLogger {
	if debug {
		return NewLevelLogger(w, log.DebugLevel)
	}
	return NewLevelLogger(w, log.InfoLevel)
}

// NewLevelLogger drops everything below level.
func NewLevelLogger(w io.Writer, level log.Level) CharmLogger {
	return CharmLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paint",
		Level:           level,
	})}
}

func (c CharmLogger) Infof(component string, format string, args ...interface{}) {
	c.l.With("component", component).Infof(format, args...)
}

func (c CharmLogger) Warnf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Warnf(format, args...)
}

func (c CharmLogger) Errorf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Errorf(format, args...)
}

// Debugf is only emitted when the logger was created with debug on.
func (c CharmLogger) Debugf(component string, format string, args ...interface{}) {
	c.l.With("component", component).Debugf(format, args...)
}

// MultiLogger fans every line out to several loggers.
type MultiLogger []Logger

func (m MultiLogger) Debugf(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Debugf(component, format, args...)
	}
}

func (m MultiLogger) Infof(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Infof(component, format, args...)
	}
}

func (m MultiLogger) Warnf(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Warnf(component, format, args...)
	}
}

func (m MultiLogger) Errorf(component, format string, args ...interface{}) {
	for _, l := range m {
		l.Errorf(component, format, args...)
	}
}
