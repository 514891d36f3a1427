package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/prompt"
	"github.com/infohub/infohub/internal/routes"
	"github.com/infohub/infohub/internal/tui"
	"github.com/infohub/infohub/internal/ui"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
}

// loginCmd opens the sign-in form
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	Long: `Sign in with e-mail and password.

The backend is simulated: any new e-mail is accepted, while an e-mail
registered in the same session must use its password.`,
	Example: `  # Open the sign-in screen
  infohub login

  # Sign in with line prompts
  infohub login --plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, routes.Login)
	},
}

// registerCmd opens the two-step registration
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create an account in two steps.

Step 1 asks for name, CPF, phone, e-mail and password.
Step 2 asks for person type and world; e-mail and password are carried
over from step 1.`,
	Example: `  # Open the registration screens
  infohub register

  # Register with line prompts
  infohub register --plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, routes.Register)
	},
}

// runApp opens start in the full-screen interface, or runs the matching
// line-prompt flow in plain mode or when stdout is not a terminal.
func runApp(cmd *cobra.Command, start routes.Route) error {
	service := account.NewSimulated(cfg)

	if !cfg.UI.Plain && ui.IsTerminal() {
		return tui.Run(tui.Options{
			Config:    cfg,
			Auth:      service,
			Registrar: service,
			Start:     start,
		}, cfg.UI.AltScreen)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := prompt.NewRunner(prompt.NewSurveyDriver(), ui.NewPrinter(cmd.OutOrStdout()))

	switch start {
	case routes.Login:
		_, err := prompt.Login(ctx, runner, service)
		return quietAbort(err)
	case routes.Register:
		flow := account.NewFlow(service, account.RulesFromConfig(cfg))
		_, err := prompt.Register(ctx, runner, flow)
		return quietAbort(err)
	default:
		return fmt.Errorf("line prompts need a command: use 'infohub login --plain' or 'infohub register --plain'")
	}
}

// quietAbort turns a user abort into a clean exit.
func quietAbort(err error) error {
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
