package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiscordCmd(a *app) *cobra.Command {
	var creator bool

	cmd := &cobra.Command{
		Use:   "discord",
		Short: "Print the API's Discord support server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			if !creator {
				server, err := client.DiscordServer(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, server)
				return nil
			}

			info, err := client.DiscordServerWithCreator(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, info.Server)
			fmt.Fprintln(out, info.CreatorInvite)
			return nil
		},
	}

	cmd.Flags().BoolVar(&creator, "creator", false, "Also print the invite to the API creator's server")

	return cmd
}
