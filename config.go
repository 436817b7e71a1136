package lawful

import "log/slog"

// DefaultTrials is the number of sampled trials per law used by DefaultConfig.
const DefaultTrials = 100

// Config controls law validation.
type Config struct {
	// Trials is the number of sampled trials to run per law.
	// Values below 1 fall back to DefaultTrials.
	Trials int

	// Logger, when non-nil, receives debug-level records for each law check
	// and class validation. The core never installs a handler itself; wire
	// one (e.g. tint) at the program edge.
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults: 100 trials per law, no logging.
func DefaultConfig() Config {
	return Config{Trials: DefaultTrials}
}

func (c Config) trials() int {
	if c.Trials < 1 {
		return DefaultTrials
	}
	return c.Trials
}
