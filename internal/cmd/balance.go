package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the bot's pocket balance",
		Args:  cobra.NoArgs,
		RunE:  runBalance,
	}
}

func runBalance(cmd *cobra.Command, _ []string) error {
	client, err := getClient(cmd)
	if err != nil {
		return err
	}

	balance := client.Pocket().Balance(cmd.Context())
	if balance == nil {
		return errRequestFailed
	}

	if isJSON(cmd) {
		return printJSON(cmd, balance)
	}

	w := newTabWriter(cmd)
	fmt.Fprintf(w, "Gold:\t%d\n", balance.Gold)
	fmt.Fprintf(w, "Sweets:\t%s\n", balance.Sweets)
	fmt.Fprintf(w, "Donate score:\t%d\n", balance.DonateScore)
	return w.Flush()
}
