package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/update"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSON(cmd) {
				payload := map[string]any{"version": version}
				if result := update.Check(cmd.Context(), version); result != nil && result.UpdateAvailable {
					payload["latest"] = result.LatestVersion
					payload["update_url"] = result.UpdateURL
				}
				return printJSON(cmd, payload)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "iris %s\n", version)
			if result := update.Check(cmd.Context(), version); result != nil && result.UpdateAvailable {
				fmt.Fprintf(cmd.ErrOrStderr(), "A newer release %s is available: %s\n", result.LatestVersion, result.UpdateURL)
			}
			return nil
		},
	}
}
