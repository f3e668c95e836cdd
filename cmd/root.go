package cmd

import (
	"fmt"
	"os"

	"github.com/bin2s/bin2s/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bin2s",
	Short: "Convert binary files to GCC assembly modules",
	Long: `bin2s converts binary files into GNU assembler source modules that embed
each file's bytes as a read-only data array, so build systems can link
assets (graphics, audio, firmware blobs) directly into an executable
without a separate objcopy step.`,
	Version: version.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// reportError prints a command failure on stderr, keeping stdout free for
// generated assembly.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
