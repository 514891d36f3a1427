// Package config provides user configuration management for InfoHub.
//
// This package manages a YAML-based configuration file holding the tunable
// validation minimums, the latency of the simulated backend and terminal
// preferences. The configuration follows OS-specific conventions for storage
// location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/infohub/config.yaml or $HOME/.config/infohub/config.yaml
//   - macOS: $HOME/.config/infohub/config.yaml
//   - Windows: %LOCALAPPDATA%\infohub\config.yaml
//
// A different file can be selected with the --config flag of the CLI.
//
// # Security
//
// IMPORTANT: This package NEVER stores credentials or registration data.
// Passwords typed into the forms live only in memory.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	minLen := cfg.Validation.PasswordMinLength
//
//	cfg.Simulation.LoginDelay = 0
//	if err := cfg.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// # File Format
//
// The configuration file uses YAML format:
//
//	version: 1
//	log_level: info
//	validation:
//	  password_min_length: 6
//	  phone_min_digits: 10
//	simulation:
//	  login_delay: 1s
//	  register_delay: 1.5s
//	ui:
//	  alt_screen: true
//	  plain: false
//
// Missing sections are filled with defaults on load. A missing file is not
// an error: Load returns the defaults.
//
// # Thread Safety
//
// Save is guarded by a package-level mutex. A loaded *Config is not safe for
// concurrent mutation.
package config
