package main

import (
	"fmt"

	"finsight/internal/content"
	"finsight/internal/output"
	"finsight/internal/ratios"
	"finsight/ui/console"

	"github.com/spf13/cobra"
)

// NewRatiosCmd prints the ratio report without starting the TUI.
func NewRatiosCmd(opts *rootOptions) *cobra.Command {
	var (
		mode   string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Print the financial ratios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				data, err := ratios.Marshal(opts.provider.Ratios())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			m, err := content.ParseContextMode(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}
			payload, err := output.BuildAnalysis(opts.provider, m, "", opts.cfg.ChartThreshold)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, m.Description())
			console.Print(out, payload.Report)
			for _, line := range payload.Insights {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", content.ModeInvestor.String(), "Context mode (Investor, Board or Audit)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the ratios in the ratios_file format")
	return cmd
}
