package tui

import (
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/tui/components"
	"github.com/shopspring/decimal"
)

// Tab is one calculator screen
type Tab int

const (
	TabFERS Tab = iota
	TabCalPERS
	TabBaristaFIRE
	TabFatFIRE
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabFERS:
		return "FERS"
	case TabCalPERS:
		return "CalPERS"
	case TabBaristaFIRE:
		return "Barista FIRE"
	case TabFatFIRE:
		return "Fat FIRE"
	default:
		return "Unknown"
	}
}

// Calculator returns the calculator the tab drives
func (t Tab) Calculator() domain.CalculatorKind {
	switch t {
	case TabCalPERS:
		return domain.CalculatorCalPERS
	case TabBaristaFIRE:
		return domain.CalculatorBaristaFIRE
	case TabFatFIRE:
		return domain.CalculatorFatFIRE
	default:
		return domain.CalculatorFERS
	}
}

func tabFor(kind domain.CalculatorKind) (Tab, bool) {
	for t := Tab(0); t < tabCount; t++ {
		if t.Calculator() == kind {
			return t, true
		}
	}
	return 0, false
}

// panel holds the inputs and latest result of one tab
type panel struct {
	tab     Tab
	name    string
	sliders []*components.ParameterSlider
	focused int

	seq      int
	result   *domain.ScenarioResult
	previous *decimal.Decimal // headline metric before the latest recalculation
	err      error
}

func (p *panel) slider(key string) *components.ParameterSlider {
	for _, s := range p.sliders {
		if s.Key == key {
			return s
		}
	}
	return nil
}

func (p *panel) focus(i int) {
	if len(p.sliders) == 0 {
		return
	}
	i = (i + len(p.sliders)) % len(p.sliders)
	p.sliders[p.focused].SetFocused(false)
	p.focused = i
	p.sliders[i].SetFocused(true)
}

func (p *panel) focusedSlider() *components.ParameterSlider {
	if len(p.sliders) == 0 {
		return nil
	}
	return p.sliders[p.focused]
}

// scenario builds calculator input from the current slider values
func (p *panel) scenario() domain.Scenario {
	s := domain.Scenario{Name: p.name, Calculator: p.tab.Calculator()}
	v := func(key string) decimal.Decimal { return p.slider(key).Decimal() }
	age := func(key string) int { return p.slider(key).Int() }

	switch p.tab {
	case TabFERS:
		ss := v("ss_benefit_at_62")
		in := &domain.FERSInput{
			HighThreeSalary: v("high_three_salary"),
			YearsOfService:  v("service_years"),
			CurrentAge:      age("retirement_age"),
			SurvivorOption:  domain.SurvivorOption(p.slider("survivor_option").Choice()),
			RetirementPath:  domain.RetirementPath(p.slider("retirement_path").Choice()),
		}
		if ss.IsPositive() {
			in.SSBenefitAt62Monthly = &ss
		}
		s.FERS = in
	case TabCalPERS:
		s.CalPERS = &domain.CalPERSInput{
			Formula:           domain.CalPERSFormula(p.slider("formula").Choice()),
			FinalCompensation: v("final_compensation"),
			ServiceYears:      v("service_years"),
			RetirementAge:     age("retirement_age"),
		}
	case TabBaristaFIRE:
		s.BaristaFIRE = &domain.BaristaFIREInput{
			CurrentSavings:    v("current_savings"),
			MonthlyExpenses:   v("monthly_expenses"),
			PartTimeIncome:    v("part_time_income"),
			ExpectedReturnPct: v("expected_return_pct"),
			WithdrawalRatePct: v("withdrawal_rate_pct"),
		}
	case TabFatFIRE:
		s.FatFIRE = &domain.FatFIREInput{
			AnnualSpending:    v("annual_spending"),
			CurrentSavings:    v("current_savings"),
			CurrentAge:        age("current_age"),
			TargetAge:         age("target_age"),
			CurrentIncome:     v("current_income"),
			SavingsRatePct:    v("savings_rate_pct"),
			ExpectedReturnPct: v("expected_return_pct"),
			WithdrawalRatePct: v("withdrawal_rate_pct"),
		}
	}
	return s
}

// seed copies a configured scenario's inputs onto the sliders
func (p *panel) seed(s domain.Scenario) {
	set := func(key string, d decimal.Decimal) {
		if sl := p.slider(key); sl != nil {
			sl.SetValue(d.InexactFloat64())
		}
	}
	setInt := func(key string, n int) { set(key, decimal.NewFromInt(int64(n))) }
	choose := func(key, choice string) {
		sl := p.slider(key)
		if sl == nil {
			return
		}
		for i, c := range sl.Choices {
			if c == choice {
				sl.SetValue(float64(i))
			}
		}
	}

	p.name = s.Name
	switch {
	case p.tab == TabFERS && s.FERS != nil:
		set("high_three_salary", s.FERS.HighThreeSalary)
		set("service_years", s.FERS.YearsOfService)
		setInt("retirement_age", s.FERS.CurrentAge)
		choose("survivor_option", string(s.FERS.SurvivorOption))
		choose("retirement_path", string(s.FERS.RetirementPath))
		if s.FERS.SSBenefitAt62Monthly != nil {
			set("ss_benefit_at_62", *s.FERS.SSBenefitAt62Monthly)
		}
	case p.tab == TabCalPERS && s.CalPERS != nil:
		choose("formula", string(s.CalPERS.Formula))
		set("final_compensation", s.CalPERS.FinalCompensation)
		set("service_years", s.CalPERS.ServiceYears)
		setInt("retirement_age", s.CalPERS.RetirementAge)
	case p.tab == TabBaristaFIRE && s.BaristaFIRE != nil:
		set("current_savings", s.BaristaFIRE.CurrentSavings)
		set("monthly_expenses", s.BaristaFIRE.MonthlyExpenses)
		set("part_time_income", s.BaristaFIRE.PartTimeIncome)
		set("expected_return_pct", s.BaristaFIRE.ExpectedReturnPct)
		set("withdrawal_rate_pct", s.BaristaFIRE.WithdrawalRatePct)
	case p.tab == TabFatFIRE && s.FatFIRE != nil:
		set("annual_spending", s.FatFIRE.AnnualSpending)
		set("current_savings", s.FatFIRE.CurrentSavings)
		setInt("current_age", s.FatFIRE.CurrentAge)
		setInt("target_age", s.FatFIRE.TargetAge)
		set("current_income", s.FatFIRE.CurrentIncome)
		set("savings_rate_pct", s.FatFIRE.SavingsRatePct)
		set("expected_return_pct", s.FatFIRE.ExpectedReturnPct)
		set("withdrawal_rate_pct", s.FatFIRE.WithdrawalRatePct)
	}
}

func money(key, label string, value, min, max, step float64) *components.ParameterSlider {
	return components.NewParameterSlider(key, label, value, min, max, step).WithPrefix("$")
}

func percent(key, label string, value, min, max, step float64) *components.ParameterSlider {
	return components.NewParameterSlider(key, label, value, min, max, step).WithUnit("%").WithFormat("%.2f")
}

func years(key, label string, value, min, max, step float64) *components.ParameterSlider {
	return components.NewParameterSlider(key, label, value, min, max, step).WithUnit(" yrs")
}

func newPanel(tab Tab, calpersFormulas []string) *panel {
	p := &panel{tab: tab, name: tab.String()}

	switch tab {
	case TabFERS:
		p.sliders = []*components.ParameterSlider{
			money("high_three_salary", "High-3 salary", 100000, 20000, 250000, 1000),
			years("service_years", "Creditable service", 20, 0, 45, 1),
			years("retirement_age", "Age at retirement", 62, 50, 75, 1),
			components.NewChoiceSlider("survivor_option", "Survivor election",
				[]string{string(domain.SurvivorNone), string(domain.SurvivorPartial), string(domain.SurvivorFull)},
				string(domain.SurvivorNone)),
			components.NewChoiceSlider("retirement_path", "Eligibility path",
				[]string{string(domain.PathStandard), string(domain.PathMRAPlus10)},
				string(domain.PathStandard)),
			money("ss_benefit_at_62", "SS estimate at 62 (monthly)", 0, 0, 5000, 50).
				WithDescription("Zero leaves the supplement out"),
		}
	case TabCalPERS:
		p.sliders = []*components.ParameterSlider{
			components.NewChoiceSlider("formula", "Formula", calpersFormulas, string(domain.FormulaClassic2At55)),
			money("final_compensation", "Final compensation", 100000, 20000, 300000, 1000),
			years("service_years", "Service credit", 25, 0, 45, 0.5).WithFormat("%.1f"),
			years("retirement_age", "Retirement age", 55, 50, 70, 1),
		}
	case TabBaristaFIRE:
		p.sliders = []*components.ParameterSlider{
			money("current_savings", "Current savings", 400000, 0, 3000000, 5000),
			money("monthly_expenses", "Monthly expenses", 4000, 500, 20000, 100),
			money("part_time_income", "Part-time income (monthly)", 2000, 0, 15000, 100),
			percent("expected_return_pct", "Expected return", 7, 0, 12, 0.25),
			percent("withdrawal_rate_pct", "Withdrawal rate", 4, 2, 6, 0.25),
		}
	case TabFatFIRE:
		p.sliders = []*components.ParameterSlider{
			money("annual_spending", "Annual spending", 200000, 50000, 1000000, 5000),
			money("current_savings", "Current savings", 500000, 0, 10000000, 10000),
			years("current_age", "Current age", 40, 18, 80, 1),
			years("target_age", "Target age", 50, 18, 90, 1),
			money("current_income", "Current income", 400000, 0, 2000000, 5000),
			percent("savings_rate_pct", "Savings rate", 25, 0, 90, 1),
			percent("expected_return_pct", "Expected return", 7, 0, 12, 0.25),
			percent("withdrawal_rate_pct", "Withdrawal rate", 4, 2, 6, 0.25),
		}
	}

	for _, s := range p.sliders {
		s.WithWidth(24)
	}
	p.focus(0)
	return p
}
