package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/resolve"
)

func newHistoryCmd() *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "history <currency>",
		Short: "Show the bot's transfer history for one currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, err := resolve.Currency(args[0])
			if err != nil {
				return badInput("currency", err.Error())
			}

			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			entries, err := client.Pocket().History(cmd.Context(), currency, offset)
			if err != nil {
				return err
			}

			if isJSON(cmd) {
				return printJSON(cmd, entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history entries.")
				return nil
			}

			w := newTabWriter(cmd)
			fmt.Fprintln(w, "TIME\tTYPE\tUSER\tAMOUNT\tCOMMENT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					e.Time().Format(time.DateTime), e.Type, e.UserID, e.Amount, formatOptional(e.Comment))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Skip this many entries from the start of the history")

	return cmd
}
