package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/config"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
)

var (
	sweepScenario  string
	sweepParameter string
	sweepMin       float64
	sweepMax       float64
	sweepSteps     int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [input-file]",
	Short: "Recalculate one scenario across a range of one input",
	Long: fmt.Sprintf(`Recalculates a scenario from the configuration file at evenly spaced
values of one input and reports the headline figure at each.

Parameters: %s

Examples:
  retirecalc sweep scenarios.yaml --scenario "CalPERS classic at 55" --parameter retirement_age --min 50 --max 62 --steps 13
  retirecalc sweep scenarios.yaml --parameter expected_return_pct --min 3 --max 9 --steps 7`,
		strings.Join(calculation.SweepParameterNames(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		scenario, err := findScenario(cfg, sweepScenario)
		if err != nil {
			return err
		}

		analysis, err := calculation.NewSensitivityAnalyzer(newEngine()).Sweep(cmd.Context(), cfg.Assumptions, scenario, domain.SensitivityParameter{
			Name:     sweepParameter,
			MinValue: decimal.NewFromFloat(sweepMin),
			MaxValue: decimal.NewFromFloat(sweepMax),
			Steps:    sweepSteps,
		})
		if err != nil {
			return err
		}

		rep := output.BuildSensitivityReport(analysis)
		return render(cmd.OutOrStdout(), output.NewDocument(rep.Title, rep))
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepScenario, "scenario", "", "Scenario name (default: the first scenario)")
	sweepCmd.Flags().StringVar(&sweepParameter, "parameter", "", "Input to vary")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "First value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "Last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "Number of values, including both ends")
	_ = sweepCmd.MarkFlagRequired("parameter")

	rootCmd.AddCommand(sweepCmd)
}

func findScenario(cfg *domain.Configuration, name string) (domain.Scenario, error) {
	if name == "" {
		return cfg.Scenarios[0], nil
	}
	for _, s := range cfg.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("scenario %q not found", name)
}
