package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iris-tg/iris-cli/internal/api"
)

// statusReport aggregates the read-only endpoints into one overview.
type statusReport struct {
	Balance *api.BalanceSnapshot `json:"balance"`
	Orders  *api.OpenOrders      `json:"orders"`
	Agents  []int64              `json:"agents"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show balance, open orders, and agents in one overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			var report statusReport
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				report.Balance = client.Pocket().Balance(ctx)
				return nil
			})
			g.Go(func() error {
				report.Orders = client.Trade().MyOrders(ctx)
				return nil
			})
			g.Go(func() error {
				report.Agents = client.Agents().List(ctx)
				return nil
			})
			_ = g.Wait()

			if report.Balance == nil && report.Orders == nil && report.Agents == nil {
				return errRequestFailed
			}

			if isJSON(cmd) {
				return printJSON(cmd, report)
			}

			w := newTabWriter(cmd)
			if report.Balance != nil {
				fmt.Fprintf(w, "Gold:\t%d\n", report.Balance.Gold)
				fmt.Fprintf(w, "Sweets:\t%s\n", report.Balance.Sweets)
				fmt.Fprintf(w, "Donate score:\t%d\n", report.Balance.DonateScore)
			} else {
				fmt.Fprintln(w, "Balance:\tunavailable")
			}
			if report.Orders != nil {
				fmt.Fprintf(w, "Open orders:\t%d buy / %d sell\n", len(report.Orders.Buy), len(report.Orders.Sell))
			} else {
				fmt.Fprintln(w, "Open orders:\tunavailable")
			}
			if report.Agents != nil {
				fmt.Fprintf(w, "Agents:\t%d\n", len(report.Agents))
			} else {
				fmt.Fprintln(w, "Agents:\tunavailable")
			}
			return w.Flush()
		},
	}
}
