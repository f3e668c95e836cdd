package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bin2s/bin2s/internal/bin2s"
	"github.com/spf13/cobra"
)

var (
	convertAlignment  int
	convertLineLength int
	convertOutput     string
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert [flags] FILE...",
	Short: "Convert binary files to assembly modules",
	Long: `For each input file, convert emits assembly defining three symbols:

    {identifier}:       an array of bytes containing the data
    {identifier}_end:   the location directly after the end of the data
    {identifier}_size:  an unsigned int containing the data length in bytes

where {identifier} is the file's base name sanitized to a legal symbol,
e.g. foo_bin for gfx/foo.bin and _4bit_chr for 4bit.chr.

All modules are written to one output stream, stdout by default.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args, convertAlignment, convertLineLength, convertOutput); err != nil {
			reportError(err)
			os.Exit(1)
		}
	},
}

func init() {
	convertCmd.Flags().IntVarP(&convertAlignment, "alignment", "a", bin2s.DefaultAlignment, "Boundary alignment, in bytes")
	convertCmd.Flags().IntVarP(&convertLineLength, "line-length", "l", bin2s.DefaultLineLength, "Number of data bytes per output line")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file, writes to stdout if not provided")
	rootCmd.AddCommand(convertCmd)
}

// runConvert converts every listed file into a single output stream.
// Empty files are skipped with a warning on stderr; any other failure
// aborts the run.
func runConvert(files []string, alignment, lineLength int, output string) error {
	opts := bin2s.Options{Alignment: alignment, LineLength: lineLength}
	if err := opts.Validate(); err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	if err := bin2s.Banner(out, toolName()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, name := range files {
		if err := convertFile(out, name, opts); err != nil {
			return err
		}
	}
	return nil
}

// convertFile converts one input file, closing it on all paths.
func convertFile(out io.Writer, name string, opts bin2s.Options) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	written, err := bin2s.Convert(out, filepath.Base(name), f, opts)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", name, err)
	}
	if !written {
		fmt.Fprintf(os.Stderr, "%s: warning: skipping empty file %q\n", toolName(), name)
	}
	return nil
}

func toolName() string {
	return filepath.Base(os.Args[0])
}
