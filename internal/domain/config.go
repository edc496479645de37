package domain

import "fmt"

const (
	// DefaultSalesperson identifies orders entered without an explicit
	// salesperson override.
	DefaultSalesperson = "counter"
	// DefaultDataFile is the store location relative to the working
	// directory.
	DefaultDataFile = ".orderdesk/orders.json"
)

// SessionConfig holds settings loaded from .orderdesk.yaml.
type SessionConfig struct {
	Salesperson string `yaml:"salesperson"`
	DataFile    string `yaml:"data_file"`
	// MaxAttempts bounds every retry loop (customer lookup, product
	// lookup, quantity, yes/no). 0 keeps the loops unbounded.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultSessionConfig returns the config used when no .orderdesk.yaml
// is present.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Salesperson: DefaultSalesperson,
		DataFile:    DefaultDataFile,
	}
}

// Validate checks the config for invalid values and returns a
// descriptive error.
func (c SessionConfig) Validate() error {
	if c.Salesperson == "" {
		return fmt.Errorf("salesperson must not be empty")
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must be >= 0 (got %d)", c.MaxAttempts)
	}
	return nil
}
