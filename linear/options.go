package linear

import "github.com/YuminosukeSato/golinreg/pkg/log"

// Option is a function that configures LinearModel
type Option func(*LinearModel)

// WithImputeMissing sets whether missing (NaN) values are replaced with the
// mean of the non-missing values in the same sequence. Enabled by default.
// When disabled, recalculation fails if any missing value is present.
func WithImputeMissing(impute bool) Option {
	return func(lm *LinearModel) {
		lm.imputeMissing = impute
	}
}

// WithVerbose sets whether mutating operations emit status log messages.
// Disabled by default. Verbose output never alters returned values.
func WithVerbose(verbose bool) Option {
	return func(lm *LinearModel) {
		lm.verbose = verbose
	}
}

// WithLogger sets the logger used for verbose status messages.
// Defaults to the package provider's logger named "linear.model".
func WithLogger(logger log.Logger) Option {
	return func(lm *LinearModel) {
		lm.logger = logger
	}
}
