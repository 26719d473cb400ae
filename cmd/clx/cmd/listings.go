package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/Katos24/crosslist-pro/internal/api/client"
	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage listings",
		Long: "Create, query, and manage product listings and their\n" +
			"per-platform publish state.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsCreateCmd(),
		listingsDeleteCmd(),
		listingsSoldCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your listings",
		Example: `  # List all listings for the configured user
  clx listings list --user u-123

  # Paginate
  clx listings list --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				UserID: viper.GetString("user"),
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  clx listings get abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}

func listingsCreateCmd() *cobra.Command {
	var (
		title       string
		description string
		price       float64
		currency    string
		category    string
		condition   string
		images      []string
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing",
		Example: `  clx listings create --title "Fender Stratocaster" --price 899.99 \
    --category "Musical Instruments" --condition USED_GOOD \
    --image https://cdn.example.com/strat-front.jpg`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			l, err := c.CreateListing(context.Background(), &domain.Listing{
				UserID:      viper.GetString("user"),
				Title:       title,
				Description: description,
				Price:       price,
				Currency:    currency,
				Category:    category,
				Condition:   domain.Condition(condition),
				Images:      images,
				Quantity:    quantity,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			fmt.Printf("Created listing %s\n", l.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&description, "description", "", "listing description")
	cmd.Flags().Float64Var(&price, "price", 0, "price (required)")
	cmd.Flags().StringVar(&currency, "currency", "USD", "price currency")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringVar(&condition, "condition", "USED_GOOD", "item condition")
	cmd.Flags().StringArrayVar(&images, "image", nil, "image URL (repeatable)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))
	cobra.CheckErr(cmd.MarkFlagRequired("price"))

	return cmd
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a listing",
		Example: `  clx listings delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteListing(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted listing %s\n", args[0])
			return nil
		},
	}
}

func listingsSoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sold <id>",
		Short:   "Mark a listing as sold",
		Example: `  clx listings sold abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.MarkSold(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked listing %s as sold\n", args[0])
			return nil
		},
	}
}
