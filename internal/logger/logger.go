// Package logger builds the application logger.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logger at the named level ("debug", "info", ...) writing to
// out. An unparsable level falls back to info. Format "json" selects the
// JSON formatter; anything else gives human-readable text.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
