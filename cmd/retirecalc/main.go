package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/config"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFormat string
	debugMode    bool
	saveReport   bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "retirecalc",
	Short: "Retirement benefit calculator",
	Long: `Estimates retirement income and savings targets:

  FERS basic annuity, supplement and COLA projections
  CalPERS defined-benefit pensions
  Barista FIRE and Fat FIRE savings targets

Scenarios are read from YAML files, or given directly as flags to the
per-calculator commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if debugMode {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate every scenario in a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		results, err := newEngine().RunScenarios(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		if err := render(cmd.OutOrStdout(), output.BuildRunDocument(results)); err != nil {
			return err
		}

		failed := 0
		for _, r := range results.Results {
			if r.Failed() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(results.Results))
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
		return nil
	},
}

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "List the CalPERS benefit formulas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := output.Report{Title: "CalPERS formulas", Calculator: domain.CalculatorCalPERS}
		for _, f := range calculation.CalPERSFormulas() {
			section := output.Section{
				Title:   f.Name,
				Rows:    []output.Row{{Label: "ID", Value: string(f.ID)}, {Label: "Minimum age", Value: fmt.Sprint(f.MinimumAge)}, {Label: "About", Value: f.Description}},
				Columns: []string{"Age", "Factor"},
			}
			for _, row := range f.Table {
				section.Table = append(section.Table, []string{fmt.Sprint(row.Age), row.Factor.StringFixed(3) + "%"})
			}
			section.Table = append(section.Table, []string{fmt.Sprintf("%d+", f.Table.MaxAge()+1), f.MaxFactor.StringFixed(3) + "%"})
			rep.Sections = append(rep.Sections, section)
		}
		return render(cmd.OutOrStdout(), output.NewDocument("CalPERS Benefit Formulas", rep))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "retirecalc %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && debugMode {
			fmt.Fprintln(cmd.OutOrStdout(), bi.GoVersion)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console, csv, html, json, markdown)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&saveReport, "save", false, "Also write the report to retirement_report_<timestamp>.<ext>")

	rootCmd.AddCommand(calculateCmd, validateCmd, formulasCmd, versionCmd)
}

// newEngine returns an engine that logs through the command's zap logger
func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())
	return engine
}

var reportExtensions = map[string]string{
	"console":  "txt",
	"csv":      "csv",
	"html":     "html",
	"json":     "json",
	"markdown": "md",
}

// render formats doc with the selected formatter and writes it to w,
// and to a timestamped file when --save is set.
func render(w io.Writer, doc *output.Document) error {
	f := output.GetFormatterByName(outputFormat)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %v)", outputFormat, output.FormatterNames())
	}

	data, err := f.Format(doc)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	if saveReport {
		filename, err := output.WriteFormatted(f, doc, reportExtensions[f.Name()])
		if err != nil {
			return err
		}
		logger.Info("report saved", zap.String("file", filename))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
