package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

func publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <listing-id>",
		Short: "Publish a listing to every connected marketplace",
		Long: "Publish a listing to every marketplace the user has connected.\n" +
			"Each platform is attempted independently; one failing does not\n" +
			"stop the others. The exit status is non-zero if any platform failed.",
		Example: `  clx publish abc123 --user u-123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Publish(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			if err := printPublishResult(result); err != nil {
				return err
			}

			for _, r := range result.Platforms {
				if !r.Success {
					return fmt.Errorf("some platforms failed")
				}
			}
			return nil
		},
	}
}

func printPublishResult(result *domain.PublishResult) error {
	tw := newTabWriter()
	tw.writef("PLATFORM\tRESULT\tEXTERNAL ID\tURL\tERROR\n")
	for _, p := range domain.Platforms {
		r, ok := result.Platforms[p]
		if !ok {
			continue
		}
		outcome := "ok"
		if !r.Success {
			outcome = "failed"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			p, outcome, r.ExternalID, r.URL, truncate(r.Error, 60))
	}
	return tw.finish()
}
