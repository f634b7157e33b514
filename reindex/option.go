package reindex

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Reindexer
type Option func(*Reindexer)

// WithWorkers sets the number of concurrent document jobs
func WithWorkers(workers int) Option {
	return func(r *Reindexer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithDocumentTimeout sets the per document fetch and extraction timeout
func WithDocumentTimeout(timeout time.Duration) Option {
	return func(r *Reindexer) {
		if timeout > 0 {
			r.documentTimeout = timeout
		}
	}
}

// WithFetchRate limits document fetches per second, 0 disables the limit
func WithFetchRate(perSecond float64) Option {
	return func(r *Reindexer) {
		if perSecond > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reindexer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
