// Package main is the entry point for the clx CLI.
package main

import "github.com/Katos24/crosslist-pro/cmd/clx/cmd"

func main() {
	cmd.Execute()
}
