package main

import "github.com/bin2s/bin2s/cmd"

// main is the entry point of the bin2s CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
