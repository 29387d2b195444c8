package output

import (
	"fmt"
	"strings"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildSensitivityReport renders a parameter sweep
func BuildSensitivityReport(a *domain.SensitivityAnalysis) Report {
	name := strings.ReplaceAll(a.Parameter.Name, "_", " ")
	metric := strings.ReplaceAll(a.MetricName, "_", " ")
	money := a.MetricName != "years_to_target"

	render := func(v decimal.Decimal) string {
		if money {
			return FormatCurrency(v)
		}
		return v.String()
	}

	rep := Report{
		Title:      fmt.Sprintf("%s: sensitivity to %s", a.ScenarioName, name),
		Calculator: a.Calculator,
		Data:       a,
		Highlights: []Row{
			{"Lowest " + metric, render(a.MinMetric)},
			{"Highest " + metric, render(a.MaxMetric)},
			{"Spread", render(a.Spread)},
		},
	}

	table := Section{Title: "Sweep", Columns: []string{name, metric, "note"}}
	for _, p := range a.Points {
		row := []string{p.Value.String(), render(p.Metric), string(p.Outcome)}
		if p.Error != "" {
			row[1] = "n/a"
			row[2] = p.Error
		} else if p.Outcome == domain.OutcomeNotReachable && !money {
			row[1] = "n/a"
		}
		table.Table = append(table.Table, row)
	}
	rep.Sections = append(rep.Sections, table)
	return rep
}
