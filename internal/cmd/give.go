package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
	"github.com/iris-tg/iris-cli/internal/resolve"
)

func newGiveCmd() *cobra.Command {
	var (
		comment            string
		withoutDonateScore bool
	)

	cmd := &cobra.Command{
		Use:   "give <currency> <user-id> <amount>",
		Short: "Transfer currency to a user",
		Long:  "Transfer gold, sweets, or donate score from the bot's pocket to a user.\nCurrency names are matched fuzzily, so 'gol' and 'donate' work.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, err := resolve.Currency(args[0])
			if err != nil {
				return badInput("currency", err.Error())
			}
			userID, err := parseUserID(args[1])
			if err != nil {
				return err
			}
			amount, err := parseCount("amount", args[2])
			if err != nil {
				return err
			}

			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var result *api.GenericResult
			switch currency {
			case api.CurrencyGold:
				result, err = client.Pocket().GiveGold(ctx, amount, userID, comment, withoutDonateScore)
			case api.CurrencySweets:
				result, err = client.Pocket().GiveSweets(ctx, amount, userID, comment, withoutDonateScore)
			case api.CurrencyDonateScore:
				result, err = client.Pocket().GiveDonateScore(ctx, amount, userID, comment)
			}
			if err != nil {
				return err
			}
			return printGenericResult(cmd, "transfer", result)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Attach a comment to the transfer (max 128 characters)")
	cmd.Flags().BoolVar(&withoutDonateScore, "without-donate-score", false, "Skip the donate score bonus for this transfer")

	return cmd
}
