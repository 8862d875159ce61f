package internal

import "github.com/starford/tubetrack/internal/clock"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	clock   clock.Clock
	version string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClock overrides the time source used for deadlines and relative times.
func WithClock(c clock.Clock) Option {
	return func(a *application) {
		a.clock = c
	}
}

// WithVersion sets the version reported to MCP clients.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
