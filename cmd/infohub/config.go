package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infohub/infohub/internal/config"
	"github.com/infohub/infohub/internal/logging"
	"github.com/infohub/infohub/internal/ui"
)

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the config file commands. It skips loading the file so a
// broken file can still be located and replaced.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults are applied.

A missing file shows the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		data, err := loaded.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Example: `  # Create the default file
  infohub config init

  # Replace an existing file
  infohub config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", statErr)
	}

	if exists && !forceInit {
		ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			"Arquivo de configuração existente",
			[]string{path, "O conteúdo atual será substituído pelos valores padrão."},
			"Substituir?")
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Nada foi alterado.")
			return nil
		}
	}

	if err := config.New().Save(path); err != nil {
		return err
	}

	logging.Info("Config file written")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuração salva em %s\n", path)
	return nil
}
