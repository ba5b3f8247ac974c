package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
)

func newTradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade sweets for gold on the exchange",
	}

	cmd.AddCommand(newTradeBuyCmd())
	cmd.AddCommand(newTradeSellCmd())
	cmd.AddCommand(newTradeOrdersCmd())
	cmd.AddCommand(newTradeCancelCmd())

	return cmd
}

func newTradeBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <price> <volume>",
		Short: "Place a buy order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[0])
			if err != nil {
				return err
			}
			volume, err := parseCount("volume", args[1])
			if err != nil {
				return err
			}
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Trade().Buy(cmd.Context(), price, volume)
			if err != nil {
				return err
			}
			if result == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Filled volume: %d\n", result.DoneVolume)
			fmt.Fprintf(out, "Sweets spent: %s\n", result.SweetsSpent)
			if result.NewOrder != nil {
				fmt.Fprintf(out, "Open order: %s\n", formatOrder(*result.NewOrder))
			}
			return nil
		},
	}
}

func newTradeSellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell <price> <volume>",
		Short: "Place a sell order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[0])
			if err != nil {
				return err
			}
			volume, err := parseCount("volume", args[1])
			if err != nil {
				return err
			}
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Trade().Sell(cmd.Context(), price, volume)
			if err != nil {
				return err
			}
			if result == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Filled volume: %d\n", result.DoneVolume)
			fmt.Fprintf(out, "Sweets earned: %s\n", result.SweetsEarned)
			if result.NewOrder != nil {
				fmt.Fprintf(out, "Open order: %s\n", formatOrder(*result.NewOrder))
			}
			return nil
		},
	}
}

func newTradeOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List the bot's open orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			orders := client.Trade().MyOrders(cmd.Context())
			if orders == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, orders)
			}

			w := newTabWriter(cmd)
			fmt.Fprintln(w, "SIDE\tID\tVOLUME\tPRICE")
			for _, o := range orders.Buy {
				fmt.Fprintf(w, "buy\t%s\t%s\t%s\n", formatOrderID(o), formatOrderVolume(o), formatOrderPrice(o))
			}
			for _, o := range orders.Sell {
				fmt.Fprintf(w, "sell\t%s\t%s\t%s\n", formatOrderID(o), formatOrderVolume(o), formatOrderPrice(o))
			}
			return w.Flush()
		},
	}
}

func newTradeCancelCmd() *cobra.Command {
	var (
		priceArg string
		all      bool
		orderID  int64
		volume   int
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel open orders by price, by id, or all at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selectors := 0
			if all {
				selectors++
			}
			if priceArg != "" {
				selectors++
			}
			if orderID != 0 {
				selectors++
			}
			if selectors != 1 {
				return badInput("selector", "use exactly one of --all, --price, or --id")
			}

			client, err := getClient(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var result *api.CancelResult
			switch {
			case all:
				result = client.Trade().CancelAll(ctx)
			case priceArg != "":
				price, err := parsePrice(priceArg)
				if err != nil {
					return err
				}
				result, err = client.Trade().CancelPrice(ctx, price)
				if err != nil {
					return err
				}
			default:
				if volume <= 0 {
					return badInput("volume", "a positive --volume is required with --id")
				}
				result = client.Trade().CancelPart(ctx, orderID, volume)
			}

			if result == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled %d order(s), volume %d\n",
				len(result.CancelledOrders), result.CancelledVolume)
			return nil
		},
	}

	cmd.Flags().StringVar(&priceArg, "price", "", "Cancel every order at this price")
	cmd.Flags().BoolVar(&all, "all", false, "Cancel every open order")
	cmd.Flags().Int64Var(&orderID, "id", 0, "Cancel part of the order with this id")
	cmd.Flags().IntVar(&volume, "volume", 0, "Volume to cancel, used with --id")

	return cmd
}

func formatOrder(o api.TradeOrder) string {
	return fmt.Sprintf("id %s, volume %s, price %s", formatOrderID(o), formatOrderVolume(o), formatOrderPrice(o))
}

func formatOrderID(o api.TradeOrder) string {
	if o.ID == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *o.ID)
}

func formatOrderVolume(o api.TradeOrder) string {
	if o.Volume == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *o.Volume)
}

func formatOrderPrice(o api.TradeOrder) string {
	if o.Price == nil {
		return "-"
	}
	return o.Price.String()
}
