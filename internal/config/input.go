package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Plausible human age range accepted in scenario files
const (
	minAge = 18
	maxAge = 100
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration. Unknown fields are rejected.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("configuration is empty")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a loaded configuration. The CalPERS minimum
// age guard is left to the engine so a batch can report it per scenario.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.ValidateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// ValidateScenario checks that exactly the input matching the calculator is
// present and sane
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	set := 0
	for _, present := range []bool{scenario.FERS != nil, scenario.CalPERS != nil, scenario.BaristaFIRE != nil, scenario.FatFIRE != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("only the %s input may be set", scenario.Calculator)
	}

	switch scenario.Calculator {
	case domain.CalculatorFERS:
		if scenario.FERS == nil {
			return fmt.Errorf("fers input is required")
		}
		return ip.validateFERS(scenario.FERS)
	case domain.CalculatorCalPERS:
		if scenario.CalPERS == nil {
			return fmt.Errorf("calpers input is required")
		}
		return ip.validateCalPERS(scenario.CalPERS)
	case domain.CalculatorBaristaFIRE:
		if scenario.BaristaFIRE == nil {
			return fmt.Errorf("barista_fire input is required")
		}
		return ip.validateBaristaFIRE(scenario.BaristaFIRE)
	case domain.CalculatorFatFIRE:
		if scenario.FatFIRE == nil {
			return fmt.Errorf("fat_fire input is required")
		}
		return ip.validateFatFIRE(scenario.FatFIRE)
	case "":
		return fmt.Errorf("calculator is required")
	default:
		return fmt.Errorf("unknown calculator %q", scenario.Calculator)
	}
}

func (ip *InputParser) validateFERS(in *domain.FERSInput) error {
	if err := nonNegative(
		field{"high_three_salary", in.HighThreeSalary},
		field{"years_of_service", in.YearsOfService},
	); err != nil {
		return err
	}
	if err := plausibleAge("current_age", in.CurrentAge); err != nil {
		return err
	}
	if !in.SurvivorOption.Valid() {
		return invalid("survivor_option", "must be none, partial or full, got %q", in.SurvivorOption)
	}
	if !in.RetirementPath.Valid() {
		return invalid("retirement_path", "must be standard or mra_plus_10, got %q", in.RetirementPath)
	}
	if in.SSBenefitAt62Monthly != nil {
		if err := nonNegative(field{"ss_benefit_at_62_monthly", *in.SSBenefitAt62Monthly}); err != nil {
			return err
		}
	}
	if in.InflationRatePct != nil {
		return inflationInRange("inflation_rate_pct", *in.InflationRatePct)
	}
	return nil
}

func (ip *InputParser) validateCalPERS(in *domain.CalPERSInput) error {
	if _, ok := calculation.LookupCalPERSFormula(in.Formula); !ok {
		return &calculation.ValidationError{
			Field:   "formula",
			Message: fmt.Sprintf("%q is not one of %v", in.Formula, formulaIDs()),
			Cause:   calculation.ErrUnknownFormula,
		}
	}
	if err := nonNegative(
		field{"final_compensation", in.FinalCompensation},
		field{"service_years", in.ServiceYears},
	); err != nil {
		return err
	}
	return plausibleAge("retirement_age", in.RetirementAge)
}

func (ip *InputParser) validateBaristaFIRE(in *domain.BaristaFIREInput) error {
	if err := nonNegative(
		field{"current_savings", in.CurrentSavings},
		field{"monthly_expenses", in.MonthlyExpenses},
		field{"part_time_income", in.PartTimeIncome},
	); err != nil {
		return err
	}
	return positive("withdrawal_rate_pct", in.WithdrawalRatePct)
}

func (ip *InputParser) validateFatFIRE(in *domain.FatFIREInput) error {
	if err := nonNegative(
		field{"annual_spending", in.AnnualSpending},
		field{"current_savings", in.CurrentSavings},
		field{"current_income", in.CurrentIncome},
		field{"savings_rate_pct", in.SavingsRatePct},
	); err != nil {
		return err
	}
	if in.SavingsRatePct.GreaterThan(decimal.NewFromInt(100)) {
		return invalid("savings_rate_pct", "cannot exceed 100, got %s", in.SavingsRatePct)
	}
	if err := plausibleAge("current_age", in.CurrentAge); err != nil {
		return err
	}
	if err := plausibleAge("target_age", in.TargetAge); err != nil {
		return err
	}
	if in.TargetAge < in.CurrentAge {
		return invalid("target_age", "(%d) cannot be before current_age (%d)", in.TargetAge, in.CurrentAge)
	}
	return positive("withdrawal_rate_pct", in.WithdrawalRatePct)
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.FERSInflationRatePct != nil {
		return inflationInRange("fers_inflation_rate_pct", *a.FERSInflationRatePct)
	}
	return nil
}

// field is a named input value, checked in declaration order
type field struct {
	name  string
	value decimal.Decimal
}

func invalid(name, format string, args ...interface{}) error {
	return &calculation.ValidationError{Field: name, Message: fmt.Sprintf(format, args...), Cause: calculation.ErrInvalidInput}
}

// nonNegative reports the first negative field
func nonNegative(fields ...field) error {
	for _, f := range fields {
		if f.value.IsNegative() {
			return invalid(f.name, "cannot be negative, got %s", f.value)
		}
	}
	return nil
}

func positive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return invalid(name, "must be positive, got %s", v)
	}
	return nil
}

func plausibleAge(name string, age int) error {
	if age < minAge || age > maxAge {
		return invalid(name, "must be between %d and %d, got %d", minAge, maxAge, age)
	}
	return nil
}

// Allow deflation but cap extreme values
func inflationInRange(name string, pct decimal.Decimal) error {
	if pct.LessThan(decimal.NewFromInt(-10)) || pct.GreaterThan(decimal.NewFromInt(20)) {
		return invalid(name, "must be between -10%% and 20%%, got %s%%", pct.StringFixed(2))
	}
	return nil
}

func formulaIDs() []domain.CalPERSFormula {
	formulas := calculation.CalPERSFormulas()
	ids := make([]domain.CalPERSFormula, 0, len(formulas))
	for _, f := range formulas {
		ids = append(ids, f.ID)
	}
	return ids
}
