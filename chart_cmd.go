package main

import (
	"cmp"
	"fmt"
	"os"

	"finsight/internal/chart"
	"finsight/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewChartCmd exports the key-ratio chart as a PNG image.
func NewChartCmd(opts *rootOptions) *cobra.Command {
	var (
		outPath       string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Export the key ratio chart as PNG",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return fmt.Errorf("--out is required")
			}
			if width < 0 || height < 0 {
				return fmt.Errorf("--width and --height must not be negative")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewStderr(opts.cfg.LogLevel, opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			c, err := chart.KeyRatios(opts.provider, opts.cfg.ChartThreshold)
			if err != nil {
				return err
			}

			cfg := opts.cfg
			if width > 0 || height > 0 {
				cfg = cfg.WithChartSize(cmp.Or(width, cfg.ChartWidth), cmp.Or(height, cfg.ChartHeight))
			}
			ro := chart.RenderOptions{Width: cfg.ChartWidth, Height: cfg.ChartHeight}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := chart.RenderPNG(f, c, ro); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			logger.Info("chart exported",
				zap.String("path", outPath),
				zap.Int("width", ro.Width),
				zap.Int("height", ro.Height),
				zap.Int("bars", len(c.Bars)),
			)
			cmd.Printf("Chart written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output PNG file")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default from config)")
	return cmd
}
