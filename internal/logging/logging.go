// Package logging builds the pterm logger shared by the service and the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"fatal":    pterm.LogLevelFatal,
	"disabled": pterm.LogLevelDisabled,
}

func ParseLevel(s string) (pterm.LogLevel, error) {
	l, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return pterm.LogLevelDisabled, errors.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// New returns a logger writing to w at the given level. format is "text" or "json".
func New(level, format string, w io.Writer) (*pterm.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := pterm.DefaultLogger.WithLevel(l)
	if w != nil {
		logger = logger.WithWriter(w)
	}
	if format == "json" {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger, nil
}

// Nop discards everything.
func Nop() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
}
