package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up another user's reputation and pocket",
	}

	cmd.AddCommand(newUserRegCmd())
	cmd.AddCommand(newUserSpamCmd())
	cmd.AddCommand(newUserActivityCmd())
	cmd.AddCommand(newUserStarsCmd())
	cmd.AddCommand(newUserPocketCmd())

	return cmd
}

func newUserRegCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reg <user-id>",
		Short: "Show a user's registration date",
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

			info := client.UserInfo().Reg(cmd.Context(), userID)
			if info == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered: %s\n", info.Time().Format(time.DateTime))
			return nil
		},
	}
}

func newUserSpamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spam <user-id>",
		Short: "Show a user's spam, ignore, and scam flags",
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

			info := client.UserInfo().Spam(cmd.Context(), userID)
			if info == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			w := newTabWriter(cmd)
			fmt.Fprintf(w, "Spam:\t%t\n", info.Spam)
			fmt.Fprintf(w, "Ignore:\t%t\n", info.Ignore)
			fmt.Fprintf(w, "Scam:\t%t\n", info.Scam)
			return w.Flush()
		},
	}
}

func newUserActivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity <user-id>",
		Short: "Show a user's chat activity counters",
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

			info := client.UserInfo().Activity(cmd.Context(), userID)
			if info == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			w := newTabWriter(cmd)
			fmt.Fprintf(w, "Messages:\t%d\n", info.Messages)
			fmt.Fprintf(w, "Characters:\t%d\n", info.Characters)
			fmt.Fprintf(w, "Forwarded:\t%d\n", info.Forwarded)
			fmt.Fprintf(w, "Replies:\t%d\n", info.Replies)
			fmt.Fprintf(w, "Mentions:\t%d\n", info.Mentions)
			return w.Flush()
		},
	}
}

func newUserStarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stars <user-id>",
		Short: "Show a user's stars and rank",
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

			info := client.UserInfo().Stars(cmd.Context(), userID)
			if info == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			w := newTabWriter(cmd)
			fmt.Fprintf(w, "Stars:\t%d\n", info.Stars)
			fmt.Fprintf(w, "Rank:\t%s\n", info.Rank)
			return w.Flush()
		},
	}
}

func newUserPocketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pocket <user-id>",
		Short: "Show another user's pocket balance",
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

			info := client.UserInfo().Pocket(cmd.Context(), userID)
			if info == nil {
				return errRequestFailed
			}
			if isJSON(cmd) {
				return printJSON(cmd, info)
			}
			w := newTabWriter(cmd)
			fmt.Fprintf(w, "Gold:\t%d\n", info.Gold)
			fmt.Fprintf(w, "Sweets:\t%s\n", info.Sweets)
			fmt.Fprintf(w, "Donate score:\t%d\n", info.DonateScore)
			return w.Flush()
		},
	}
}
