package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jubinaghara/mutual-fund-analysis/internal/cfg"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/engine"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/middleware"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/metrics"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/tools/store"
	"github.com/jubinaghara/mutual-fund-analysis/pkg/utility"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	configPath string
	report     bool
	config     cfg.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "navrank",
		Short:        "Compare mutual fund NAV histories by risk and return",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := c.NewLogger()
			if err != nil {
				return fmt.Errorf("error creating logger: %w", err)
			}
			a.config = c
			a.logger = logger.With(zap.Stringer("run_id", utility.GetRunID()))
			a.logger.Debug(fmt.Sprintf("navrank %s", version))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVar(&a.report, "report", false, "log the full metrics report of every ranked instrument")

	root.AddCommand(newCompareCmd(a), newDemoCmd(a))
	return root
}

func newCompareCmd(a *app) *cobra.Command {
	var duckdbPath string

	cmd := &cobra.Command{
		Use:   "compare <payload file | scheme code>...",
		Short: "Rank up to five instruments loaded from payload files or a DuckDB database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := selectRefs(args, a.config.Source.MaxInstruments)
			if err != nil {
				return err
			}

			if duckdbPath == "" {
				duckdbPath = a.config.Source.DuckDBPath
			}
			var l loader = fileLoader{}
			if duckdbPath != "" {
				dl, err := newDuckDBLoader(duckdbPath)
				if err != nil {
					return err
				}
				l = dl
			}
			defer l.Close()

			instruments := loadAll(cmd.Context(), a.logger, l, refs)
			return a.compare(cmd.Context(), cmd.OutOrStdout(), instruments)
		},
	}
	cmd.Flags().StringVar(&duckdbPath, "duckdb", "", "read scheme codes from this DuckDB database instead of payload files")
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Rank a set of synthetic NAV histories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.compare(cmd.Context(), cmd.OutOrStdout(), demoInstruments(seed))
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func (a *app) compare(ctx context.Context, w io.Writer, instruments []common.Instrument) error {
	e := engine.New(a.logger.Named("engine"), a.config.EngineOptions()...)

	telemetry, err := middleware.NewTelemetry(a.logger.Named("telemetry"), prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("error creating telemetry: %w", err)
	}
	performance := middleware.NewPerformance(a.logger.Named("performance"))
	monitor := middleware.NewMonitor(a.logger.Named("monitor"), middleware.MonitorRecords|middleware.MonitorDegraded)
	cache := middleware.NewCache(store.NewRecordStore())

	handler := middleware.Chain(
		cache.WithAnalyze,
		telemetry.WithAnalyze,
		performance.WithAnalyze,
		monitor.WithAnalyze,
	)(e.Analyze)

	comparison, err := engine.Compare(ctx, handler, instruments)
	if err != nil {
		return err
	}
	defer telemetry.PrintStatistics()
	defer performance.PrintStatistics()

	a.logger.Info("comparison finished",
		zap.Stringer("id", comparison.ID),
		zap.Int("ranked", len(comparison.Entries)),
		zap.Int("excluded", len(comparison.Excluded)))

	if len(comparison.Entries) == 0 {
		return ErrNothingToCompare
	}
	if a.report {
		for _, entry := range comparison.Entries {
			metrics.PrintReport(a.logger.Named("report"), entry.Record)
		}
	}
	if _, err := fmt.Fprintln(w, renderTable(comparison.Entries)); err != nil {
		return err
	}
	if len(comparison.Excluded) > 0 {
		_, err = fmt.Fprintln(w, warningStyle.Render("Excluded (no data): "+strings.Join(comparison.Excluded, ", ")))
	}
	return err
}
