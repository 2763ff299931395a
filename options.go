package astar

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options defines parameters for the search.
type Options struct {
	// Logger receives Debug entries for frontier events. Defaults to a discarding logger.
	Logger *logrus.Entry
	// ExpansionLimit aborts the search after this many expansions. Zero means unlimited.
	ExpansionLimit int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes debug output of the search to logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

// WithExpansionLimit caps the number of node expansions.
func WithExpansionLimit(limit int) Option {
	return func(options *Options) { options.ExpansionLimit = limit }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{Logger: discardLogger()}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
