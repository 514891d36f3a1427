package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/infohub/infohub/internal/account"
	"github.com/infohub/infohub/internal/format"
	"github.com/infohub/infohub/internal/validation"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(formatCmd)
}

// checkRules maps rule names to the rules the forms use, with the
// configured minimums.
func checkRules(rules account.Rules) map[string]validation.Rule {
	return map[string]validation.Rule{
		"required":   validation.Required,
		"email":      validation.Email,
		"password":   validation.PasswordMinLength(rules.PasswordMinLength),
		"cpf":        validation.NationalID,
		"cpf-strict": validation.NationalIDChecksum,
		"phone":      validation.PhoneMinDigits(rules.PhoneMinDigits),
	}
}

func ruleNames(rules map[string]validation.Rule) []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkCmd validates a single value
var checkCmd = &cobra.Command{
	Use:   "check <rule> <value>",
	Short: "Validate a value with one of the form rules",
	Long: `Validate a single value with the same rule the forms use.

Rules: required, email, password, cpf, cpf-strict, phone.

"cpf" checks the shape only (11 digits, not all equal). "cpf-strict" also
verifies the check digits.`,
	Example: `  infohub check email ana@exemplo.com
  infohub check cpf 529.982.247-25
  infohub check phone "(11) 98765-4321"`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	rules := checkRules(account.RulesFromConfig(cfg))

	name := strings.ToLower(args[0])
	rule, ok := rules[name]
	if !ok {
		return fmt.Errorf("unknown rule %q (available: %s)", args[0], strings.Join(ruleNames(rules), ", "))
	}

	if err := rule(args[1]); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", account.UserMessage(err))
		return fmt.Errorf("value rejected by rule %s", name)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ valid")
	return nil
}

// formatCmd applies a display mask
var formatCmd = &cobra.Command{
	Use:   "format <cpf|phone> <value>",
	Short: "Apply the CPF or phone display mask",
	Long: `Apply the display mask the forms use when a field loses focus.

Values with the wrong number of digits are printed as bare digits.`,
	Example: `  infohub format cpf 52998224725
  infohub format phone 11987654321`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out string
		switch strings.ToLower(args[0]) {
		case "cpf":
			out = format.NationalID(args[1])
		case "phone", "telefone":
			out = format.Phone(args[1])
		default:
			return fmt.Errorf("unknown mask %q (available: cpf, phone)", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
