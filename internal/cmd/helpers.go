package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
	"github.com/iris-tg/iris-cli/internal/config"
	"github.com/iris-tg/iris-cli/internal/outfmt"
	"github.com/iris-tg/iris-cli/internal/validation"
)

// errRequestFailed is returned when an API call yields no result. The API
// layer suppresses remote failures into nil; rerun with --debug for details.
var errRequestFailed = errors.New("request failed (run with --debug for details)")

// getClient builds an API client from flags and environment.
func getClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := config.Resolve(flags.BotID, flags.Token, flags.BaseURL)
	if err != nil {
		return nil, err
	}

	client, err := api.New(cfg.BotID, cfg.Token)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL != "" {
		client.BaseURL = fmt.Sprintf("%s/api/%d_%s/v%s", cfg.BaseURL, cfg.BotID, cfg.Token, api.APIVersion)
	}
	client.HTTP.Timeout = flags.Timeout
	client.UserAgent = "iris-cli/" + version
	return client, nil
}

// badInput wraps a CLI argument problem so it exits with the bad-input code.
func badInput(field, reason string) error {
	return &validation.Error{Field: field, Reason: reason}
}

func parseUserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, badInput("user_id", fmt.Sprintf("must be a positive integer, got %q", arg))
	}
	return id, nil
}

func parseCount(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, badInput(field, fmt.Sprintf("must be an integer, got %q", arg))
	}
	return n, nil
}

func parsePrice(arg string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Decimal{}, badInput("price", fmt.Sprintf("must be a decimal number, got %q", arg))
	}
	return price, nil
}

func isJSON(cmd *cobra.Command) bool {
	return outfmt.IsJSON(cmd.Context())
}

// printJSON renders v as JSON, applying the --jq filter when one is set.
func printJSON(cmd *cobra.Command, v any) error {
	return outfmt.WriteJSONFiltered(cmd.OutOrStdout(), v, outfmt.QueryFromContext(cmd.Context()))
}

func newTabWriter(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

// printGenericResult renders a mutation outcome. A nil result means the
// request never produced a usable response; a result carrying an error detail
// is a server-side rejection.
func printGenericResult(cmd *cobra.Command, action string, result *api.GenericResult) error {
	if result == nil {
		return errRequestFailed
	}
	if isJSON(cmd) {
		return printJSON(cmd, result)
	}
	if result.Error != nil {
		return fmt.Errorf("%s failed: %s (code %d)", action, result.Error.Description, result.Error.Code)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (result %d)\n", action, result.Result)
	return nil
}

func formatOptional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
