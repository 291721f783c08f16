// Package logging provides component-scoped logrus loggers.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger tagged with the given component name. Level is
// controlled by CALLTRACE_LOG_LEVEL; anything unparseable means warn, which
// keeps library warnings visible without flooding CLI output.
func NewLogger(component string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("CALLTRACE_LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	return logger.WithField("component", component)
}
