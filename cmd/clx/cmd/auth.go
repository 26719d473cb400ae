package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Register and log in",
	}

	authRoot.AddCommand(
		authRegisterCmd(),
		authLoginCmd(),
	)

	return authRoot
}

func authRegisterCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account",
		Example: `  clx auth register --name Kat --email kat@example.com --password <password>`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			userID, err := c.Register(context.Background(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered. Use --user %s on subsequent commands.\n", userID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("email"))
	cobra.CheckErr(cmd.MarkFlagRequired("password"))

	return cmd
}

func authLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Verify credentials and print the user id",
		Example: `  clx auth login --email kat@example.com --password <password>`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			userID, err := c.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Println(userID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("email"))
	cobra.CheckErr(cmd.MarkFlagRequired("password"))

	return cmd
}
