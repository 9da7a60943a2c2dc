// Package main provides the CLI entry point for donutpanel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/donutpanel-go/pkg/donutpanel"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/config"
	"github.com/ukaji3/donutpanel-go/pkg/donutpanel/output"
)

type options struct {
	outputPath   string
	metadataPath string
	configPath   string
	dpi          float64
	sheets       []string
	workers      int
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "donutpanel [input.xlsx|input.csv]",
		Short: "Render a panel of regional donut charts",
		Long: `donutpanel reads per-region severity percentages from a spreadsheet and
renders one donut chart per region in a grid with a shared legend, saved as PNG.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "donut_panel.png", "Output PNG path")
	rootCmd.Flags().StringVar(&opts.metadataPath, "metadata", "", "Write a JSON run report to this path")
	rootCmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "Output resolution (overrides config)")
	rootCmd.Flags().StringSliceVar(&opts.sheets, "sheet", nil, "Preferred sheet name, may be repeated")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent cell renders (overrides config); each holds a full cell bitmap in memory")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func run(cmd *cobra.Command, inputPath string, opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg, opts)

	report, err := donutpanel.Generate(cmd.Context(), inputPath, opts.outputPath, cfg, logger)
	if err != nil {
		logger.Error("panel generation failed", zap.Error(err))
		return err
	}

	if opts.metadataPath != "" {
		if err := output.WriteReport(opts.metadataPath, report, true); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", report.Output)
	return nil
}

// applyFlags overrides cfg with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *donutpanel.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("dpi") {
		cfg.DPI = opts.dpi
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("sheet") {
		cfg.Sheets = append(append([]string(nil), opts.sheets...), cfg.Sheets...)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}
