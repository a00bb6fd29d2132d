package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uraxy/gaaqoo/internal/config"
	"github.com/uraxy/gaaqoo/internal/convert"
	"github.com/uraxy/gaaqoo/internal/logging"
	"github.com/uraxy/gaaqoo/internal/photo"
)

func runConvert(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), verbose)
	ctx := cmd.Context()
	log.Debug(ctx, "loaded config", "path", path,
		"src", cfg.SourceDir, "dst", cfg.DestDir,
		"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.X, cfg.Canvas.Y))

	overlay, err := photo.NewOverlay(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}
	defer overlay.Close()

	syncer := convert.NewSyncer(cfg, convert.NewConverter(cfg, overlay), log)
	report, err := syncer.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nConversion complete (%s):\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(out, "  Converted: %d\n", report.Converted)
	fmt.Fprintf(out, "  Skipped:   %d\n", report.Skipped)
	fmt.Fprintf(out, "  Failed:    %d\n", report.Failed)
	fmt.Fprintf(out, "  Removed:   %d\n", len(report.Removed))
	if report.RemoveFailed > 0 {
		fmt.Fprintf(out, "  Remove failed: %d\n", report.RemoveFailed)
	}

	if report.Failed > 0 {
		fmt.Fprintln(out, "\nFailed files:")
		for _, r := range report.Results {
			if r.Error != nil {
				fmt.Fprintf(out, "  - %s: %v\n", r.Source, r.Error)
			}
		}
	}

	return nil
}
