package main

import (
	"fmt"
	"path/filepath"
	"time"

	"finsight/internal/config"
	"finsight/internal/content"
	"finsight/internal/logging"
	"finsight/internal/ratios"
	"finsight/ui/tui"
	"finsight/ui/tui/state"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	logFile    string
	verbose    bool
	upload     string
	page       string
	ratiosFile string
	threshold  float64
	delay      time.Duration

	cfg      config.Config
	provider ratios.Provider
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "finsight",
		Short: "Financial analysis mockup in the terminal",
		Long: `FinSight is a static preview of a financial-analysis product.

It shows a Home, Analysis and Help page with a fixed set of liquidity and
profitability ratios. Uploaded files are only named, never read.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTUI()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .finsight.yaml in the working or home directory)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")
	root.PersistentFlags().StringVar(&opts.ratiosFile, "ratios-file", "", "Read ratios from this YAML file instead of the built-in data")
	root.PersistentFlags().Float64Var(&opts.threshold, "threshold", 0, "Chart values below this are flagged (default from config)")
	root.Flags().DurationVar(&opts.delay, "delay", 0, "Simulated analysis time after an upload (default from config)")
	root.Flags().StringVar(&opts.upload, "upload", "", "Simulate uploading this file on start (pdf, xlsx or csv)")
	root.Flags().StringVar(&opts.page, "page", "", "Start on this page (Home, Analysis or Help)")
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(NewRatiosCmd(opts))
	root.AddCommand(NewChartCmd(opts))
	root.AddCommand(NewVersionCmd())
	return root
}

// load resolves config (defaults, file, flags) and the ratio provider.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, _, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("ratios-file") {
		cfg = cfg.WithRatiosFile(o.ratiosFile)
	}
	if flags.Changed("threshold") {
		cfg = cfg.WithChartThreshold(o.threshold)
	}
	if flags.Changed("delay") {
		cfg = cfg.WithAnalysisDelay(o.delay)
	}
	if o.logFile != "" {
		cfg = cfg.WithLogFile(o.logFile)
	}
	if o.verbose {
		cfg = cfg.WithLogLevel("debug")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	if cfg.RatiosFile == "" {
		o.provider = ratios.MockProvider{}
		return nil
	}
	fp, err := ratios.LoadFile(cfg.RatiosFile)
	if err != nil {
		return err
	}
	o.provider = fp
	return nil
}

func (o *rootOptions) runTUI() error {
	var tuiOpts []tui.Option
	if o.upload != "" {
		if !content.IsSupported(o.upload) {
			return fmt.Errorf("invalid --upload %q: unsupported file type, expected one of %v",
				filepath.Base(o.upload), content.SupportedExtensions)
		}
		tuiOpts = append(tuiOpts, tui.WithUpload(o.upload))
	}
	if o.page != "" {
		if _, err := state.ParsePage(o.page); err != nil {
			return fmt.Errorf("--page: %w", err)
		}
		tuiOpts = append(tuiOpts, tui.WithPage(o.page))
	}

	logger, err := logging.New(o.cfg.LogFile, o.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("config resolved",
		zap.Duration("analysis_delay", o.cfg.AnalysisDelay),
		zap.String("ratios_file", o.cfg.RatiosFile),
	)

	tuiOpts = append(tuiOpts, tui.WithLogger(logger))
	return tui.Start(o.provider, o.cfg, tuiOpts...)
}
