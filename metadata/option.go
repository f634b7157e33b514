package metadata

import (
	"log/slog"
	"strings"
)

// Option configures a Store
type Option func(*Store)

// WithPath sets snapshot path relative to the object store base
func WithPath(path string) Option {
	return func(s *Store) {
		if path = strings.TrimLeft(strings.TrimSpace(path), "/"); path != "" {
			s.path = path
		}
	}
}

// WithGuardedWrites sets the number of reapply attempts after a concurrent write is detected, 0 disables the check
func WithGuardedWrites(retries int) Option {
	return func(s *Store) {
		if retries >= 0 {
			s.retries = retries
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}
