package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/output"
	"github.com/goldira/retirecalc/internal/tui/components"
	"github.com/goldira/retirecalc/internal/tui/tuistyles"
)

// View renders the active tab
func (m Model) View() string {
	p := m.panels[m.active]

	inputs := m.renderInputs(p)
	results := m.renderResults(p)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Render(inputs),
		"  ",
		results,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.TitleStyle.Render("Retirement Benefit Calculator"),
		m.renderTabs(),
		"",
		body,
		"",
		tuistyles.StatusBarStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		style := tuistyles.InactiveTabStyle
		if t == m.active {
			style = tuistyles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderInputs(p *panel) string {
	lines := make([]string, 0, len(p.sliders)+1)
	lines = append(lines, tuistyles.SubtitleStyle.Render(p.name))
	for _, s := range p.sliders {
		lines = append(lines, s.Render())
	}
	return strings.Join(lines, "\n\n")
}

func (m Model) renderResults(p *panel) string {
	if p.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + p.err.Error())
	}
	if p.result == nil {
		return tuistyles.SubtitleStyle.Render("Calculating...")
	}

	rep := output.BuildReport(*p.result)
	if rep.Error != "" {
		return tuistyles.ErrorStyle.Render("Error: " + rep.Error)
	}

	cards := make([]*components.MetricCard, 0, len(rep.Highlights))
	for _, h := range rep.Highlights {
		cards = append(cards, components.NewMetricCard(h.Label, h.Value))
	}
	if len(cards) > 0 {
		if change, positive, ok := p.trend(); ok {
			cards[0].WithTrend(positive, change)
		}
	}

	parts := []string{components.MetricGrid(cards, 2)}

	if progress, ok := fireProgress(p.result); ok {
		bar := components.NewProgressBar(progress.InexactFloat64()).
			WithLabel("Progress to target").
			WithWidth(40)
		parts = append(parts, bar.Render())
	}

	for _, section := range rep.Sections {
		if len(section.Rows) == 0 {
			continue
		}
		parts = append(parts, renderSection(section))
	}

	for _, w := range rep.Warnings {
		parts = append(parts, tuistyles.WarningStyle.Render("! "+w))
	}

	return strings.Join(parts, "\n\n")
}

func renderSection(section output.Section) string {
	width := 0
	for _, r := range section.Rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(section.Title))
	for _, r := range section.Rows {
		fmt.Fprintf(&b, "\n%s  %s",
			tuistyles.MetricLabelStyle.Render(fmt.Sprintf("%-*s", width, r.Label)),
			r.Value)
	}
	return b.String()
}

// trend compares the headline metric with the previous calculation
func (p *panel) trend() (string, bool, bool) {
	if p.previous == nil || p.result == nil {
		return "", false, false
	}
	current, ok := headline(p.result)
	if !ok {
		return "", false, false
	}
	delta := current.Sub(*p.previous)
	if delta.IsZero() {
		return "", false, false
	}

	var change string
	switch p.tab {
	case TabBaristaFIRE, TabFatFIRE:
		change = FormatSignedPercentage(delta)
	default:
		change = FormatSignedCurrency(delta)
	}
	return change, delta.IsPositive(), true
}

// headline is the figure whose change is shown as a trend: monthly
// income for pensions, progress toward the target for FIRE plans.
func headline(r *domain.ScenarioResult) (decimal.Decimal, bool) {
	switch {
	case r == nil:
		return decimal.Zero, false
	case r.FERS != nil:
		return r.FERS.MonthlyAnnuity, true
	case r.CalPERS != nil:
		return r.CalPERS.MonthlyBenefit, true
	}
	return fireProgress(r)
}

func fireProgress(r *domain.ScenarioResult) (decimal.Decimal, bool) {
	switch {
	case r.BaristaFIRE != nil:
		return r.BaristaFIRE.ProgressPct, true
	case r.FatFIRE != nil:
		return r.FatFIRE.ProgressPct, true
	}
	return decimal.Zero, false
}

// FormatSignedCurrency renders a change in dollars with an explicit sign
func FormatSignedCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return output.FormatCurrency(d)
	}
	return "+" + output.FormatCurrency(d)
}

// FormatSignedPercentage renders a change in percentage points with an explicit sign
func FormatSignedPercentage(d decimal.Decimal) string {
	if d.IsNegative() {
		return output.FormatPercentage(d)
	}
	return "+" + output.FormatPercentage(d)
}
