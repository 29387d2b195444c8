package output

import (
	"fmt"
	"strconv"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Row is one label/value line of a report
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups rows, or a breakdown table, under a heading
type Section struct {
	Title   string     `json:"title"`
	Rows    []Row      `json:"rows,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Table   [][]string `json:"table,omitempty"`
}

// Report is the display-ready form of one calculator result
type Report struct {
	Title      string                `json:"title"`
	Calculator domain.CalculatorKind `json:"calculator,omitempty"`
	Highlights []Row                 `json:"highlights,omitempty"`
	Sections   []Section             `json:"sections,omitempty"`
	Warnings   []string              `json:"warnings,omitempty"`
	Error      string                `json:"error,omitempty"`

	// Data is the raw result the report was built from
	Data interface{} `json:"data,omitempty"`
}

// Document is what a Formatter renders: one or more reports plus the
// modelling assumptions behind them
type Document struct {
	Title       string   `json:"title"`
	Assumptions []string `json:"assumptions"`
	Reports     []Report `json:"reports"`
}

// NewDocument wraps reports with the default assumptions
func NewDocument(title string, reports ...Report) *Document {
	return &Document{Title: title, Assumptions: DefaultAssumptions, Reports: reports}
}

// BuildRunDocument builds a document covering every scenario of a run
func BuildRunDocument(results *domain.RunResults) *Document {
	doc := NewDocument("Retirement Benefit Estimates")
	if results == nil {
		return doc
	}
	for _, r := range results.Results {
		doc.Reports = append(doc.Reports, BuildReport(r))
	}
	return doc
}

// BuildReport dispatches a scenario result to the matching report builder
func BuildReport(result domain.ScenarioResult) Report {
	switch {
	case result.Failed():
		return Report{Title: result.Name, Calculator: result.Calculator, Error: result.Error}
	case result.FERS != nil:
		return BuildFERSReport(result.Name, result.FERS)
	case result.CalPERS != nil:
		return BuildCalPERSReport(result.Name, result.CalPERS)
	case result.BaristaFIRE != nil:
		return BuildBaristaFIREReport(result.Name, result.BaristaFIRE)
	case result.FatFIRE != nil:
		return BuildFatFIREReport(result.Name, result.FatFIRE)
	}
	return Report{Title: result.Name, Calculator: result.Calculator, Error: "no result"}
}

// BuildFERSReport renders a FERS annuity result
func BuildFERSReport(title string, r *domain.FERSResult) Report {
	rep := Report{
		Title:      title,
		Calculator: domain.CalculatorFERS,
		Data:       r,
		Highlights: []Row{
			{"Monthly annuity", FormatCurrency(r.MonthlyAnnuity)},
			{"Annual annuity", FormatCurrency(r.AnnualAnnuity)},
			{"Multiplier", FormatPercentage(r.Multiplier.Mul(decimal.NewFromInt(100)))},
		},
	}

	calc := Section{Title: "Annuity calculation", Rows: []Row{
		{"Basic annuity", FormatCurrency(r.BasicAnnuity)},
	}}
	if !r.EarlyReductionPct.IsZero() {
		calc.Rows = append(calc.Rows,
			Row{"MRA+10 reduction", FormatPercentage(r.EarlyReductionPct)},
			Row{"After age reduction", FormatCurrency(r.AgeReducedAnnuity)})
	}
	if !r.SurvivorReductionPct.IsZero() {
		calc.Rows = append(calc.Rows,
			Row{"Survivor election cost", FormatPercentage(r.SurvivorReductionPct)},
			Row{"Survivor annuity (annual)", FormatCurrency(r.SurvivorBenefit)})
	}
	calc.Rows = append(calc.Rows, Row{"Annual annuity", FormatCurrency(r.AnnualAnnuity)})
	rep.Sections = append(rep.Sections, calc)

	if r.AnnualSupplement.IsPositive() {
		rep.Highlights = append(rep.Highlights, Row{"Monthly supplement", FormatCurrency(r.MonthlySupplement)})
		rep.Sections = append(rep.Sections, Section{Title: "Special retirement supplement", Rows: []Row{
			{"Monthly", FormatCurrency(r.MonthlySupplement)},
			{"Annual", FormatCurrency(r.AnnualSupplement)},
		}})
	}

	rep.Sections = append(rep.Sections, colaSection(r.COLAProjections))
	return rep
}

// BuildCalPERSReport renders a CalPERS pension result
func BuildCalPERSReport(title string, r *domain.CalPERSResult) Report {
	rep := Report{
		Title:      title,
		Calculator: domain.CalculatorCalPERS,
		Data:       r,
		Highlights: []Row{
			{"Monthly benefit", FormatCurrency(r.MonthlyBenefit)},
			{"Annual benefit", FormatCurrency(r.AnnualBenefit)},
			{"Age factor", r.AgeFactor.StringFixed(3) + "%"},
			{"Replacement", FormatPercentage(r.ReplacementPct)},
		},
	}

	survivors := Section{Title: "Survivor options", Columns: []string{"Survivor share", "Reduction", "Monthly benefit"}}
	for _, v := range r.SurvivorVariants {
		survivors.Table = append(survivors.Table, []string{
			strconv.Itoa(v.SurvivorPct) + "%",
			FormatPercentage(v.ReductionPct),
			FormatCurrency(v.Monthly),
		})
	}
	rep.Sections = append(rep.Sections, survivors, colaSection(r.COLAProjections))
	return rep
}

// BuildBaristaFIREReport renders a Barista FIRE result
func BuildBaristaFIREReport(title string, r *domain.BaristaFIREResult) Report {
	rep := Report{
		Title:      title,
		Calculator: domain.CalculatorBaristaFIRE,
		Data:       r,
		Highlights: []Row{
			{"Barista FIRE number", FormatCurrency(r.BaristaFIRETarget)},
			{"Progress", FormatPercentage(r.ProgressPct)},
			{"Time to target", describeOutcome(r.Outcome, r.YearsToTarget)},
		},
		Sections: []Section{
			{Title: "Targets", Rows: []Row{
				{"Annual expenses", FormatCurrency(r.AnnualExpenses)},
				{"Full FIRE number", FormatCurrency(r.FullFIRETarget)},
				{"Monthly gap after part-time income", FormatCurrency(r.MonthlyGap)},
				{"Annual gap", FormatCurrency(r.AnnualGap)},
				{"Barista FIRE number", FormatCurrency(r.BaristaFIRETarget)},
				{"Shortfall", FormatCurrency(r.Shortfall)},
			}},
		},
	}
	if r.Outcome == domain.OutcomeNotReachable {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("Target not reachable within %d years under these assumptions", r.SimulatedYears))
	}
	return rep
}

// BuildFatFIREReport renders a Fat FIRE result with its year-by-year table
func BuildFatFIREReport(title string, r *domain.FatFIREResult) Report {
	rep := Report{
		Title:      title,
		Calculator: domain.CalculatorFatFIRE,
		Data:       r,
		Highlights: []Row{
			{"Fat FIRE number", FormatCurrency(r.Target)},
			{"Projected at target age", FormatCurrency(r.ProjectedBalance)},
			{"Progress", FormatPercentage(r.ProgressPct)},
		},
	}

	plan := Section{Title: "Savings plan", Rows: []Row{
		{"Annual savings", FormatCurrency(r.AnnualSavings)},
		{"Years to target age", FormatYears(r.YearsToTarget)},
	}}
	if r.OnTrack {
		plan.Rows = append(plan.Rows, Row{"Status", "On track"})
	} else {
		plan.Rows = append(plan.Rows,
			Row{"Shortfall", FormatCurrency(r.Shortfall)},
			Row{"Required annual savings", FormatCurrency(r.RequiredAnnualSavings)},
			Row{"Required monthly savings", FormatCurrency(r.RequiredMonthlySavings)})
		rep.Highlights = append(rep.Highlights, Row{"Required monthly savings", FormatCurrency(r.RequiredMonthlySavings)})
	}
	if r.FIOutcome.Reachable() {
		plan.Rows = append(plan.Rows, Row{"Financial independence at age", strconv.Itoa(r.FIAge)})
	} else {
		plan.Rows = append(plan.Rows, Row{"Financial independence", "Not reachable"})
		rep.Warnings = append(rep.Warnings, "Fat FIRE number not reachable within 50 years at the current savings rate")
	}
	rep.Sections = append(rep.Sections, plan)

	if len(r.Projection) > 0 {
		table := Section{Title: "Year-by-year projection", Columns: []string{"Age", "Contribution", "Growth", "Balance"}}
		for _, y := range r.Projection {
			table.Table = append(table.Table, []string{
				strconv.Itoa(y.Age),
				FormatCurrency(y.Contribution),
				FormatCurrency(y.Growth),
				FormatCurrency(y.Balance),
			})
		}
		rep.Sections = append(rep.Sections, table)
	}
	return rep
}

func colaSection(projections []domain.COLAProjection) Section {
	s := Section{Title: "Cost-of-living projection", Columns: []string{"Years", "Annual", "Monthly"}}
	for _, p := range projections {
		s.Table = append(s.Table, []string{strconv.Itoa(p.Years), FormatCurrency(p.Annual), FormatCurrency(p.Monthly)})
	}
	return s
}

func describeOutcome(outcome domain.ProjectionOutcome, years int) string {
	switch outcome {
	case domain.OutcomeAlreadyThere:
		return "Already there"
	case domain.OutcomeReached:
		return FormatYears(years)
	default:
		return "Not reachable"
	}
}
