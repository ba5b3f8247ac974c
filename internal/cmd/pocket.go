package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
)

func newPocketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pocket",
		Short: "Manage pocket visibility and per-user access",
	}

	cmd.AddCommand(newPocketToggleCmd("enable", "Open the pocket for incoming transfers", api.PocketService.Enable))
	cmd.AddCommand(newPocketToggleCmd("disable", "Close the pocket to incoming transfers", api.PocketService.Disable))
	cmd.AddCommand(newPocketToggleCmd("allow-all", "Lift per-user restrictions for everyone", api.PocketService.AllowAll))
	cmd.AddCommand(newPocketToggleCmd("deny-all", "Block pocket access for everyone", api.PocketService.DenyAll))
	cmd.AddCommand(newPocketUserCmd("allow", "Grant one user pocket access", api.PocketService.AllowUser))
	cmd.AddCommand(newPocketUserCmd("deny", "Revoke one user's pocket access", api.PocketService.DenyUser))

	return cmd
}

func newPocketToggleCmd(use, short string, op func(api.PocketService, context.Context) *api.GenericResult) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient(cmd)
			if err != nil {
				return err
			}
			return printGenericResult(cmd, "pocket "+use, op(client.Pocket(), cmd.Context()))
		},
	}
}

func newPocketUserCmd(use, short string, op func(api.PocketService, context.Context, int64) *api.GenericResult) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			client, err := getClient(cmd)
			if err != nil {
				return err
			}
			return printGenericResult(cmd, "pocket "+use, op(client.Pocket(), cmd.Context(), userID))
		},
	}
}
