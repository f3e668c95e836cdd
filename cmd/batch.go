package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bin2s/bin2s/internal/bin2s"
	"github.com/bin2s/bin2s/internal/config"
	"github.com/bin2s/bin2s/internal/ui"
	"github.com/bin2s/bin2s/pkg/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchManifest is the path of the manifest file to convert.
// This is set via the --manifest flag.
var batchManifest string

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all assets listed in bin2s.yaml",
	Long: `Reads a YAML manifest describing a set of binary assets and converts
all of them into a single assembly file. The manifest sets the output path,
the encoding parameters and an optional identifier override per asset.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBatch(batchManifest); err != nil {
			reportError(err)
			os.Exit(1)
		}
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchManifest, "manifest", "m", "bin2s.yaml", "Manifest file describing the assets to convert")
	rootCmd.AddCommand(batchCmd)
}

// runBatch parses the manifest and converts every asset it lists.
// When the manifest names an output file, the module is assembled in a
// uniquely named temp file and renamed into place, so a failed run never
// leaves a truncated module behind.
//
// Returns:
//   - error: An error if parsing, validation or any conversion fails.
func runBatch(manifest string) error {
	data, err := os.ReadFile(manifest)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", manifest, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", manifest, err)
	}

	config.ApplyDefaults(&cfg)

	if err := config.Validate(&cfg); err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	runID := uuid.NewString()
	slog.Info("starting batch conversion", "manifest", manifest, "assets", len(cfg.Assets), "run_id", runID)

	if cfg.Output == "" {
		return convertAssets(os.Stdout, &cfg)
	}

	tmp := cfg.Output + "." + runID + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if err := convertAssets(f, &cfg); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, cfg.Output); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	slog.Info("batch conversion complete", "output", cfg.Output, "run_id", runID)
	return nil
}

// convertAssets writes the banner and one module per asset to out.
// Empty assets are skipped with a warning and the run continues.
func convertAssets(out io.Writer, cfg *config.Config) error {
	ui.PrintHeader(fmt.Sprintf("Converting %d assets", len(cfg.Assets)))

	opts := bin2s.Options{Alignment: cfg.Alignment, LineLength: cfg.LineLength}

	if err := bin2s.Banner(out, toolName()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	for _, asset := range cfg.Assets {
		f, err := os.Open(asset.File)
		if err != nil {
			ui.PrintError(asset.File, err.Error())
			return fmt.Errorf("failed to open %s: %w", asset.File, err)
		}

		written, err := bin2s.Convert(out, asset.Identifier(), f, opts)
		f.Close()
		if err != nil {
			ui.PrintError(asset.File, err.Error())
			return fmt.Errorf("failed to convert %s: %w", asset.File, err)
		}
		if !written {
			ui.PrintWarning(asset.File, "empty file, skipped")
			slog.Warn("skipping empty asset", "file", asset.File)
			continue
		}

		// Validated by config.Validate, cannot fail here.
		symbol, _ := bin2s.Sanitize(asset.Identifier())
		ui.PrintSuccess(asset.File, symbol)
		slog.Debug("converted asset", "file", asset.File, "symbol", symbol)
	}

	return nil
}
