// Package cmd implements the iris command tree.
package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
	"github.com/iris-tg/iris-cli/internal/debug"
	"github.com/iris-tg/iris-cli/internal/outfmt"
)

// rootFlags holds global CLI flags.
type rootFlags struct {
	Output  string
	JQ      string
	Debug   bool
	BotID   int64
	Token   string
	BaseURL string
	Timeout time.Duration
}

// flags is package-level mutable state reset at the start of every Execute()
// call; tests depend on that reset for clean state.
var flags = rootFlags{
	Output:  defaultOutput(),
	Timeout: api.DefaultTimeout,
}

func defaultOutput() string {
	if value := strings.TrimSpace(os.Getenv("IRIS_OUTPUT")); value != "" {
		return value
	}
	return "text"
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "iris",
		Short:         "Interact with the Iris pocket and trade API",
		Long:          "Transfer currencies, inspect balances and histories, manage pocket visibility,\ncheck user reputation, trade sweets, and build deep links for the Iris bot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug.SetupLogger(flags.Debug)

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			ctx = debug.WithDebug(ctx, flags.Debug)
			ctx = outfmt.WithMode(ctx, mode)
			ctx = outfmt.WithQuery(ctx, flags.JQ)
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json")
	pf.StringVar(&flags.JQ, "jq", "", "Filter JSON output with a jq expression")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	pf.Int64Var(&flags.BotID, "bot-id", 0, "Bot account id (overrides IRIS_BOT_ID)")
	pf.StringVar(&flags.Token, "token", "", "API token (overrides IRIS_TOKEN)")
	pf.StringVar(&flags.BaseURL, "base-url", "", "API base URL (overrides IRIS_BASE_URL)")
	pf.DurationVar(&flags.Timeout, "timeout", api.DefaultTimeout, "Per-request timeout")

	cmd.AddCommand(newBalanceCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newGiveCmd())
	cmd.AddCommand(newPocketCmd())
	cmd.AddCommand(newUpdatesCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newTradeCmd())
	cmd.AddCommand(newLinkCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newAPICmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	// Local .env files are a dev convenience; missing files are fine.
	_ = godotenv.Load()

	flags = rootFlags{
		Output:  defaultOutput(),
		Timeout: api.DefaultTimeout,
	}

	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// ExitCode maps an Execute error onto a process exit code: 2 for bad input,
// 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if api.IsValidationError(err) {
		return 2
	}
	return 1
}
