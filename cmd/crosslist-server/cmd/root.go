// Package cmd implements the crosslist-server CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "crosslist-server",
	Short: "Publish listings to multiple marketplaces",
	Long:  "An API-first service that stores product listings once and publishes them to eBay and other marketplaces, tracking per-platform publish state.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
