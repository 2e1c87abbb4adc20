package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	verbosity int
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithVerbosity sets the log verbosity: 0 warns only, 1 adds info, 2 or more
// adds debug.
func WithVerbosity(n int) Option {
	return func(a *application) {
		a.verbosity = n
	}
}
