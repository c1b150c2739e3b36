package cuberobot

import "log/slog"

// Option configures a Session.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	algorithm Algorithm
}

func defaultConfig() *config {
	return &config{
		logger:    slog.New(slog.DiscardHandler),
		algorithm: DefaultAlgorithm,
	}
}

// WithLogger sets the logger used for session events.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAlgorithm sets the algorithm Solve uses when called with an empty one.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		if a != "" {
			c.algorithm = a
		}
	}
}
