package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newUpdatesCmd() *cobra.Command {
	var (
		offset int
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Show the paginated feed of pocket events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			updates := client.Updates().List(cmd.Context(), offset, limit)

			if isJSON(cmd) {
				return printJSON(cmd, updates)
			}

			if len(updates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No updates.")
				return nil
			}

			w := newTabWriter(cmd)
			fmt.Fprintln(w, "ID\tTIME\tTYPE\tUSER\tAMOUNT\tCOMMENT")
			for _, u := range updates {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
					u.UpdateID, u.Time().Format(time.DateTime), u.Type, u.UserID, u.Amount, formatOptional(u.Comment))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Return updates after this update id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of updates to return")

	return cmd
}
