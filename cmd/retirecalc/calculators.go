package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goldira/retirecalc/internal/config"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
)

var (
	fersSalary    float64
	fersService   float64
	fersAge       int
	fersSurvivor  string
	fersPath      string
	fersSSAt62    float64
	fersInflation float64

	calpersFormula      string
	calpersCompensation float64
	calpersService      float64
	calpersAge          int

	baristaSavings    float64
	baristaExpenses   float64
	baristaPartTime   float64
	baristaReturn     float64
	baristaWithdrawal float64

	fatSpending    float64
	fatSavings     float64
	fatAge         int
	fatTargetAge   int
	fatIncome      float64
	fatSavingsRate float64
	fatReturn      float64
	fatWithdrawal  float64
)

var fersCmd = &cobra.Command{
	Use:   "fers",
	Short: "Estimate a FERS basic annuity",
	Example: `  retirecalc fers --salary 98000 --service 28 --age 62 --survivor full
  retirecalc fers --salary 85000 --service 15 --age 57 --path mra_plus_10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &domain.FERSInput{
			HighThreeSalary: decimal.NewFromFloat(fersSalary),
			YearsOfService:  decimal.NewFromFloat(fersService),
			CurrentAge:      fersAge,
			SurvivorOption:  domain.SurvivorOption(fersSurvivor),
			RetirementPath:  domain.RetirementPath(fersPath),
		}
		if cmd.Flags().Changed("ss-at-62") {
			ss := decimal.NewFromFloat(fersSSAt62)
			in.SSBenefitAt62Monthly = &ss
		}

		var assumptions domain.Assumptions
		if cmd.Flags().Changed("inflation") {
			inflation := decimal.NewFromFloat(fersInflation)
			assumptions.FERSInflationRatePct = &inflation
		}
		return runSingle(cmd, assumptions, domain.Scenario{Name: "FERS annuity", Calculator: domain.CalculatorFERS, FERS: in})
	},
}

var calpersCmd = &cobra.Command{
	Use:     "calpers",
	Short:   "Estimate a CalPERS pension",
	Example: `  retirecalc calpers --formula classic_2_at_55 --compensation 100000 --service 25 --age 55`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, domain.Assumptions{}, domain.Scenario{
			Name:       "CalPERS pension",
			Calculator: domain.CalculatorCalPERS,
			CalPERS: &domain.CalPERSInput{
				Formula:           domain.CalPERSFormula(calpersFormula),
				FinalCompensation: decimal.NewFromFloat(calpersCompensation),
				ServiceYears:      decimal.NewFromFloat(calpersService),
				RetirementAge:     calpersAge,
			},
		})
	},
}

var baristaCmd = &cobra.Command{
	Use:     "barista",
	Short:   "Calculate a Barista FIRE number and timeline",
	Example: `  retirecalc barista --savings 400000 --expenses 4000 --part-time 2000`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, domain.Assumptions{}, domain.Scenario{
			Name:       "Barista FIRE",
			Calculator: domain.CalculatorBaristaFIRE,
			BaristaFIRE: &domain.BaristaFIREInput{
				CurrentSavings:    decimal.NewFromFloat(baristaSavings),
				MonthlyExpenses:   decimal.NewFromFloat(baristaExpenses),
				PartTimeIncome:    decimal.NewFromFloat(baristaPartTime),
				ExpectedReturnPct: decimal.NewFromFloat(baristaReturn),
				WithdrawalRatePct: decimal.NewFromFloat(baristaWithdrawal),
			},
		})
	},
}

var fatFireCmd = &cobra.Command{
	Use:     "fatfire",
	Short:   "Calculate a Fat FIRE number and savings plan",
	Example: `  retirecalc fatfire --spending 200000 --savings 500000 --age 40 --target-age 50 --income 400000 --savings-rate 25`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, domain.Assumptions{}, domain.Scenario{
			Name:       "Fat FIRE",
			Calculator: domain.CalculatorFatFIRE,
			FatFIRE: &domain.FatFIREInput{
				AnnualSpending:    decimal.NewFromFloat(fatSpending),
				CurrentSavings:    decimal.NewFromFloat(fatSavings),
				CurrentAge:        fatAge,
				TargetAge:         fatTargetAge,
				CurrentIncome:     decimal.NewFromFloat(fatIncome),
				SavingsRatePct:    decimal.NewFromFloat(fatSavingsRate),
				ExpectedReturnPct: decimal.NewFromFloat(fatReturn),
				WithdrawalRatePct: decimal.NewFromFloat(fatWithdrawal),
			},
		})
	},
}

func init() {
	fersCmd.Flags().Float64Var(&fersSalary, "salary", 0, "High-3 average salary")
	fersCmd.Flags().Float64Var(&fersService, "service", 0, "Years of creditable service")
	fersCmd.Flags().IntVar(&fersAge, "age", 62, "Age at retirement")
	fersCmd.Flags().StringVar(&fersSurvivor, "survivor", string(domain.SurvivorNone), "Survivor election (none, partial, full)")
	fersCmd.Flags().StringVar(&fersPath, "path", string(domain.PathStandard), "Eligibility path (standard, mra_plus_10)")
	fersCmd.Flags().Float64Var(&fersSSAt62, "ss-at-62", 0, "Estimated monthly Social Security at 62, enables the supplement")
	fersCmd.Flags().Float64Var(&fersInflation, "inflation", 2.5, "Inflation rate percent for COLA projections")
	_ = fersCmd.MarkFlagRequired("salary")
	_ = fersCmd.MarkFlagRequired("service")

	calpersCmd.Flags().StringVar(&calpersFormula, "formula", string(domain.FormulaClassic2At55), "Benefit formula (see 'retirecalc formulas')")
	calpersCmd.Flags().Float64Var(&calpersCompensation, "compensation", 0, "Final compensation, annual")
	calpersCmd.Flags().Float64Var(&calpersService, "service", 0, "Years of service credit")
	calpersCmd.Flags().IntVar(&calpersAge, "age", 55, "Retirement age")
	_ = calpersCmd.MarkFlagRequired("compensation")
	_ = calpersCmd.MarkFlagRequired("service")

	baristaCmd.Flags().Float64Var(&baristaSavings, "savings", 0, "Current invested savings")
	baristaCmd.Flags().Float64Var(&baristaExpenses, "expenses", 0, "Monthly expenses")
	baristaCmd.Flags().Float64Var(&baristaPartTime, "part-time", 0, "Monthly part-time income")
	baristaCmd.Flags().Float64Var(&baristaReturn, "return", 7, "Expected annual return percent")
	baristaCmd.Flags().Float64Var(&baristaWithdrawal, "withdrawal", 4, "Safe withdrawal rate percent")
	_ = baristaCmd.MarkFlagRequired("expenses")

	fatFireCmd.Flags().Float64Var(&fatSpending, "spending", 0, "Desired annual spending in retirement")
	fatFireCmd.Flags().Float64Var(&fatSavings, "savings", 0, "Current invested savings")
	fatFireCmd.Flags().IntVar(&fatAge, "age", 0, "Current age")
	fatFireCmd.Flags().IntVar(&fatTargetAge, "target-age", 0, "Target retirement age")
	fatFireCmd.Flags().Float64Var(&fatIncome, "income", 0, "Current annual income")
	fatFireCmd.Flags().Float64Var(&fatSavingsRate, "savings-rate", 0, "Percent of income saved")
	fatFireCmd.Flags().Float64Var(&fatReturn, "return", 7, "Expected annual return percent")
	fatFireCmd.Flags().Float64Var(&fatWithdrawal, "withdrawal", 4, "Safe withdrawal rate percent")
	_ = fatFireCmd.MarkFlagRequired("spending")
	_ = fatFireCmd.MarkFlagRequired("age")
	_ = fatFireCmd.MarkFlagRequired("target-age")

	rootCmd.AddCommand(fersCmd, calpersCmd, baristaCmd, fatFireCmd)
}

// runSingle validates one scenario built from flags, calculates it and
// renders it
func runSingle(cmd *cobra.Command, assumptions domain.Assumptions, scenario domain.Scenario) error {
	if err := config.NewInputParser().ValidateScenario(&scenario); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	result, err := newEngine().RunScenario(cmd.Context(), assumptions, scenario)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), output.NewDocument(scenario.Name, output.BuildReport(*result)))
}
