package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the config file format version.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version    int         `yaml:"version"`
	LogLevel   string      `yaml:"log_level,omitempty"` // "", "debug", "info", "warn", "error"
	Validation *Validation `yaml:"validation,omitempty"`
	Simulation *Simulation `yaml:"simulation,omitempty"`
	UI         *UI         `yaml:"ui,omitempty"`
}

// Validation holds the tunable minimums of the form rules.
type Validation struct {
	PasswordMinLength int `yaml:"password_min_length"` // Minimum password characters
	PhoneMinDigits    int `yaml:"phone_min_digits"`    // Minimum phone digits
}

// Simulation configures the stand-in for the future backend calls.
type Simulation struct {
	LoginDelay    time.Duration `yaml:"login_delay"`    // Simulated login round trip
	RegisterDelay time.Duration `yaml:"register_delay"` // Simulated registration round trip
}

// UI holds terminal preferences.
type UI struct {
	AltScreen bool `yaml:"alt_screen"` // Run the interactive screens in the alternate buffer
	Plain     bool `yaml:"plain"`      // Prefer line prompts over the full-screen UI
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Validation: &Validation{
			PasswordMinLength: 6,
			PhoneMinDigits:    10,
		},
		Simulation: &Simulation{
			LoginDelay:    1000 * time.Millisecond,
			RegisterDelay: 1500 * time.Millisecond,
		},
		UI: &UI{
			AltScreen: true,
		},
	}
}

// applyDefaults fills sections a loaded file set to null.
func (c *Config) applyDefaults() {
	defaults := New()
	if c.Validation == nil {
		c.Validation = defaults.Validation
	}
	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}
}

// Validate checks the configuration for values the application cannot use.
// Returns a slice of errors (empty if valid).
func (c *Config) Validate() []error {
	var errors []error

	if c.Validation != nil {
		if c.Validation.PasswordMinLength < 1 {
			errors = append(errors, fmt.Errorf("validation.password_min_length must be at least 1, got %d", c.Validation.PasswordMinLength))
		}
		if c.Validation.PhoneMinDigits < 1 {
			errors = append(errors, fmt.Errorf("validation.phone_min_digits must be at least 1, got %d", c.Validation.PhoneMinDigits))
		}
	}

	if c.Simulation != nil {
		if c.Simulation.LoginDelay < 0 {
			errors = append(errors, fmt.Errorf("simulation.login_delay cannot be negative, got %s", c.Simulation.LoginDelay))
		}
		if c.Simulation.RegisterDelay < 0 {
			errors = append(errors, fmt.Errorf("simulation.register_delay cannot be negative, got %s", c.Simulation.RegisterDelay))
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	return errors
}
