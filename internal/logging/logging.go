package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger tagged with component, writing text lines to stdout.
// An unknown level name falls back to info.
func New(component, level string) *logrus.Entry {
	return NewWithOutput(component, level, os.Stdout)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(component, level string, out io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger.WithField("component", component)
}
