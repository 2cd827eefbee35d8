package ancestor

import (
	"go.uber.org/zap"
)

// Options represent the options for a Finder.
type Options struct {
	Logger *zap.Logger
}

// DefaultOptions returns the default options for a Finder.
func DefaultOptions() Options {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return Options{
		Logger: logger,
	}
}

// WithLogger updates the logger used by the Finder with the provided logger.
func (opts Options) WithLogger(logger *zap.Logger) Options {
	opts.Logger = logger
	return opts
}
