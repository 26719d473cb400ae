// Package main is the entry point for the crosslist-pro server.
package main

import (
	"os"

	"github.com/Katos24/crosslist-pro/cmd/crosslist-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
