package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iris-tg/iris-cli/internal/api"
)

func newAPICmd() *cobra.Command {
	var (
		params []string
		post   bool
	)

	cmd := &cobra.Command{
		Use:   "api <method>",
		Short: "Call an arbitrary API method and print the raw response",
		Long:  "Call an API method by path, e.g. 'iris api pocket/balance'.\nUseful for endpoints this CLI has no dedicated command for yet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]api.Param, 0, len(params))
			for _, p := range params {
				key, value, ok := strings.Cut(p, "=")
				if !ok || key == "" {
					return badInput("param", fmt.Sprintf("expected key=value, got %q", p))
				}
				parsed = append(parsed, api.Param{Key: key, Value: value})
			}

			client, err := getClient(cmd)
			if err != nil {
				return err
			}

			body, err := client.Raw(cmd.Context(), strings.Trim(args[0], "/"), parsed, post)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(body))
			if len(body) > 0 && body[len(body)-1] != '\n' {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter as key=value, repeatable, order preserved")
	cmd.Flags().BoolVar(&post, "post", false, "Send a POST instead of a GET")

	return cmd
}
