// Infohub is the InfoHub account client.
//
// It provides the sign-in and two-step registration screens, either as a
// full-screen terminal application or as plain line prompts, plus small
// commands to check and format individual field values.
//
// Usage:
//
//	infohub [command] [flags]
//
// Running without arguments opens the home screen.
// See 'infohub --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/logging"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	plainMode  bool
)

// cfg is loaded once flags are parsed.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "infohub",
	Short: "InfoHub account client",
	Long: `InfoHub account client.

Sign in or create an account from the terminal. Registration has two
steps: personal data first, then profile.

If no command is specified, the home screen opens.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, routes.Home)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Use line prompts instead of the full-screen interface")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and initializes logging. Flags win over the
// file, the file wins over the environment.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}

	if cmd.Flags().Changed("plain") {
		cfg.UI.Plain = plainMode
	}

	logging.Debug("Configuration loaded")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	},
}
