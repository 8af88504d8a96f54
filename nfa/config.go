package nfa

import "fmt"

// Arena capacity defaults and bounds. MaxStates must leave room for the
// InvalidState sentinel; MaxTransitions is bounded at the widest
// per-state fan-out the construction rules can produce plus headroom.
const (
	DefaultMaxStates      = 256
	DefaultMaxTransitions = 4

	minStates      = 2
	maxStates      = int(InvalidState) - 1
	minTransitions = 1
	maxTransitions = 16
)

// Config fixes the arena capacities for one compilation. The values are
// read once when the builder is created and never change mid-parse.
type Config struct {
	// MaxStates is the arena size N: the total number of states one
	// compilation may allocate. Note that every concatenation strands
	// one unreachable state, so patterns need roughly two states per
	// term plus two per operator plus one orphan per concatenation.
	MaxStates int

	// MaxTransitions is the per-state fan-out limit K.
	MaxTransitions int
}

// DefaultConfig returns the standard capacities.
func DefaultConfig() Config {
	return Config{
		MaxStates:      DefaultMaxStates,
		MaxTransitions: DefaultMaxTransitions,
	}
}

// Validate checks the capacities against their hard bounds.
func (c Config) Validate() error {
	if c.MaxStates < minStates || c.MaxStates > maxStates {
		return fmt.Errorf("%w: MaxStates %d outside [%d, %d]",
			ErrInvalidConfig, c.MaxStates, minStates, maxStates)
	}
	if c.MaxTransitions < minTransitions || c.MaxTransitions > maxTransitions {
		return fmt.Errorf("%w: MaxTransitions %d outside [%d, %d]",
			ErrInvalidConfig, c.MaxTransitions, minTransitions, maxTransitions)
	}
	return nil
}
