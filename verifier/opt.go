package verifier

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options represent the options for a Verifier.
type Options struct {
	Logger logrus.FieldLogger
}

// DefaultOptions returns the default options for a Verifier.
func DefaultOptions() Options {
	return Options{
		Logger: loggerWithFields(logrus.New()),
	}
}

// WithLogLevel updates the log level of the Verifier's logger.
func (opts Options) WithLogLevel(level logrus.Level) Options {
	logger := logrus.New()
	logger.SetLevel(level)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithLogOutput updates where the Verifier's logger will log data to.
func (opts Options) WithLogOutput(output io.Writer) Options {
	logger := logrus.New()
	logger.SetOutput(output)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithLogger replaces the Verifier's logger.
func (opts Options) WithLogger(logger logrus.FieldLogger) Options {
	opts.Logger = logger
	return opts
}

func loggerWithFields(logger *logrus.Logger) logrus.FieldLogger {
	return logger.
		WithField("lib", "blockstream").
		WithField("pkg", "verifier").
		WithField("com", "verifier")
}
