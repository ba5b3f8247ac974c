package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/resolve"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build Telegram deep links for the Iris bot",
	}

	cmd.AddCommand(newLinkGiveCmd())
	cmd.AddCommand(newLinkRightsCmd())

	return cmd
}

func newLinkGiveCmd() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "give <currency> <amount>",
		Short: "Build a deep link that asks the bot to transfer currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, err := resolve.Currency(args[0])
			if err != nil {
				return badInput("currency", err.Error())
			}
			amount, err := parseCount("amount", args[1])
			if err != nil {
				return err
			}
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			link, err := client.Links().Give(currency, amount, comment)
			if err != nil {
				return err
			}
			return printLink(cmd, link)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Comment embedded in the link (letters, digits, underscores)")

	return cmd
}

func newLinkRightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rights [permission...]",
		Short: "Build a deep link that requests bot permissions from a user",
		Long:  "Build a deep link requesting permissions (reg, activity, spam, stars, pocket).\nWithout arguments the link requests no specific permission.",
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := resolve.Permissions(args)
			if err != nil {
				return badInput("permission", err.Error())
			}
			client, err := getClient(cmd)
			if err != nil {
				return err
			}
			return printLink(cmd, client.Links().RequestRights(perms...))
		},
	}
}

func printLink(cmd *cobra.Command, link string) error {
	if isJSON(cmd) {
		return printJSON(cmd, map[string]string{"link": link})
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
