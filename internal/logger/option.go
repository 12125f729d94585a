package logger

import "go.uber.org/zap"

const (
	// defaultFileMaxSizeMB is the size at which the file sink rotates.
	defaultFileMaxSizeMB = 50
	// defaultFileMaxBackups is how many rotated files are kept.
	defaultFileMaxBackups = 3
	// defaultFileMaxAgeDays is how long rotated files are kept.
	defaultFileMaxAgeDays = 14
)

// options collects optional logger settings applied by New.
type options struct {
	// filePath enables the rotated file sink when non-empty.
	filePath string
	// fileMaxSizeMB is the rotation size threshold in megabytes.
	fileMaxSizeMB int
	// fileMaxBackups is the number of rotated files to retain.
	fileMaxBackups int
	// fileMaxAgeDays is the retention period for rotated files.
	fileMaxAgeDays int
	// zapOptions are passed through to zap.New.
	zapOptions []zap.Option
}

// Option mutates logger construction settings.
type Option func(*options)

// newOptions applies the provided options over defaults.
func newOptions(opts ...Option) *options {
	settings := &options{
		fileMaxSizeMB:  defaultFileMaxSizeMB,
		fileMaxBackups: defaultFileMaxBackups,
		fileMaxAgeDays: defaultFileMaxAgeDays,
	}

	for _, opt := range opts {
		opt(settings)
	}

	return settings
}

// WithFile adds a rotated JSON file sink at the provided path.
func WithFile(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

// WithRotation overrides the file sink rotation policy.
func WithRotation(maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(o *options) {
		o.fileMaxSizeMB = maxSizeMB
		o.fileMaxBackups = maxBackups
		o.fileMaxAgeDays = maxAgeDays
	}
}

// WithZapOptions passes additional zap options to the constructed logger.
func WithZapOptions(zapOptions ...zap.Option) Option {
	return func(o *options) {
		o.zapOptions = append(o.zapOptions, zapOptions...)
	}
}
