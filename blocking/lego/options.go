package lego

import "log/slog"

type options struct {
	maxIterations int
	logger        *slog.Logger
	observer      Observer
}

// Option configures a Blocker.
type Option func(*options)

// WithMaxIterations aborts with ErrIterationLimit after n dequeues.
// Zero means no limit.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer called after every processed block.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
