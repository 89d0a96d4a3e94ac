package pdfmetadata

import (
	"log/slog"

	"github.com/afmiguel/pdf-metadata/pkg/core"
)

// options holds the internal configuration for the exposed operations.
type options struct {
	loader core.Loader
	clock  core.Clock
	logger *slog.Logger
}

// Option defines a functional option for configuring an operation.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		loader: nil, // resolved to the pdfcpu adapter in newService
		clock:  nil,
		logger: nil,
	}
}

// WithLoader allows injecting a custom document backend (e.g. a fake in
// tests). If provided, the default pdfcpu adapter is skipped.
func WithLoader(loader core.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithClock sets the timestamp source used for ModDate stamping.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger for the operations.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
