package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "eBay account connection",
	}

	ebayRoot.AddCommand(
		ebayStatusCmd(),
		ebayConnectCmd(),
	)

	return ebayRoot
}

func ebayStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show eBay connection status and remaining API quota",
		Example: `  clx ebay status --user u-123`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.GetEbayStatus(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(status)
			}

			tw := newTabWriter()
			tw.writef("Connected:\t%v\n", status.Connected)
			if status.ExpiresAt != nil {
				tw.writef("Token expires:\t%s\n", status.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
			if status.Quota != nil {
				tw.writef("Quota remaining:\t%d\n", status.Quota.Remaining)
				tw.writef("Quota resets:\t%s\n", status.Quota.ResetAt.Format("2006-01-02 15:04:05"))
			}
			return tw.finish()
		},
	}
}

func ebayConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Print the URL that starts the eBay consent flow",
		Long: "Prints the server URL that redirects to eBay's consent page.\n" +
			"Open it in a browser to connect the account; the flow finishes\n" +
			"back on the server's dashboard.",
		Example: `  clx ebay connect --user u-123`,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("%s/oauth/ebay/connect?user_id=%s\n",
				viper.GetString("server"), viper.GetString("user"))
			return nil
		},
	}
}
