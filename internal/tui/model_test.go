package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/config"
)

// settle runs cmd and feeds every resulting message back into the model
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = settle(t, m, c)
		}
	default:
		next, follow := m.Update(msg)
		m = next.(Model)
		m = settle(t, m, follow)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitCalculatesEveryTab(t *testing.T) {
	m := NewModel(nil, nil)
	m = settle(t, m, m.Init())

	for tab := Tab(0); tab < tabCount; tab++ {
		require.NoError(t, m.Err(tab), tab.String())
		require.NotNil(t, m.Result(tab), tab.String())
		assert.Equal(t, tab.Calculator(), m.Result(tab).Calculator)
	}

	fers := m.Result(TabFERS).FERS
	assert.InDelta(t, 22000, fers.AnnualAnnuity.InexactFloat64(), 0.001)
	assert.True(t, fers.EnhancedMultiplier)
	assert.InDelta(t, 4166.67, m.Result(TabCalPERS).CalPERS.MonthlyBenefit.InexactFloat64(), 0.01)
}

func TestAdjustingInputRecalculates(t *testing.T) {
	m := NewModel(nil, nil)
	m = settle(t, m, m.Init())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd, "a changed input schedules a recalculation")
	m = settle(t, m, cmd)

	fers := m.Result(TabFERS).FERS
	assert.InDelta(t, 101000*0.011*20, fers.AnnualAnnuity.InexactFloat64(), 0.001)

	change, positive, ok := m.panels[TabFERS].trend()
	require.True(t, ok)
	assert.True(t, positive)
	assert.Equal(t, "+$18", change)
}

func TestAdjustingAtLimitDoesNothing(t *testing.T) {
	m := NewModel(nil, nil)
	p := m.panels[TabFERS]
	p.sliders[0].SetValue(p.sliders[0].Max)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestTabNavigation(t *testing.T) {
	m := NewModel(nil, nil)
	assert.Equal(t, TabFERS, m.Active())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabCalPERS, m.Active())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabFatFIRE, m.Active())
}

func TestFocusWraps(t *testing.T) {
	m := NewModel(nil, nil)
	p := m.panels[TabFERS]

	m, _ = press(t, m, runes("k"))
	assert.Equal(t, len(p.sliders)-1, p.focused)
	assert.True(t, p.sliders[len(p.sliders)-1].IsFocused)
	assert.False(t, p.sliders[0].IsFocused)

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, p.focused)
}

func TestCalculationErrorIsShown(t *testing.T) {
	m := NewModel(nil, nil)
	p := m.panels[TabCalPERS]
	p.slider("formula").SetValue(2) // pepra_2_at_62, minimum age 52
	p.slider("retirement_age").SetValue(50)

	m = settle(t, m, m.calculateCmd(p))

	err := m.Err(TabCalPERS)
	require.Error(t, err)
	assert.True(t, calculation.IsValidationError(err))

	m.active = TabCalPERS
	assert.Contains(t, m.View(), "Error:")
}

func TestStaleResultsAreDropped(t *testing.T) {
	m := NewModel(nil, nil)
	p := m.panels[TabFERS]

	first := m.calculateCmd(p)
	p.slider("high_three_salary").SetValue(150000)
	second := m.calculateCmd(p)

	m = settle(t, m, second)
	m = settle(t, m, first)

	assert.InDelta(t, 150000*0.011*20, m.Result(TabFERS).FERS.AnnualAnnuity.InexactFloat64(), 0.001)
}

func TestSeedFromConfiguration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../config/testdata/valid.yaml")
	require.NoError(t, err)

	m := NewModel(calculation.NewCalculationEngine(), cfg)

	fers := m.panels[TabFERS]
	assert.Equal(t, "FERS at 62 with full survivor", fers.name)
	assert.Equal(t, 98000.0, fers.slider("high_three_salary").Value)
	assert.Equal(t, "full", fers.slider("survivor_option").Choice())

	calpers := m.panels[TabCalPERS]
	assert.Equal(t, "classic_2_at_55", calpers.slider("formula").Choice())
	assert.Equal(t, 55, calpers.slider("retirement_age").Int())

	fat := m.panels[TabFatFIRE].scenario().FatFIRE
	require.NotNil(t, fat)
	assert.Equal(t, 50, fat.TargetAge)
	assert.Equal(t, "25", fat.SavingsRatePct.String())
}

func TestScenarioOmitsZeroSocialSecurity(t *testing.T) {
	p := newPanel(TabFERS, nil)
	assert.Nil(t, p.scenario().FERS.SSBenefitAt62Monthly)

	p.slider("ss_benefit_at_62").SetValue(1900)
	ss := p.scenario().FERS.SSBenefitAt62Monthly
	require.NotNil(t, ss)
	assert.Equal(t, "1900", ss.String())
}

func TestViewShowsResults(t *testing.T) {
	m := NewModel(nil, nil)
	m = settle(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "Retirement Benefit Calculator")
	assert.Contains(t, view, "Barista FIRE")
	assert.Contains(t, view, "$1,833")

	m.active = TabBaristaFIRE
	assert.Contains(t, m.View(), "Progress to target")
}

func TestQuit(t *testing.T) {
	m := NewModel(nil, nil)
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSignedFormatting(t *testing.T) {
	p := newPanel(TabBaristaFIRE, nil)
	assert.Equal(t, "Barista FIRE", p.name)
	assert.Equal(t, "+$0", FormatSignedCurrency(decimalFromString(t, "0.2")))
	assert.Equal(t, "-$1,500", FormatSignedCurrency(decimalFromString(t, "-1500")))
	assert.Equal(t, "+2.5%", FormatSignedPercentage(decimalFromString(t, "2.5")))
	assert.Equal(t, "-0.4%", FormatSignedPercentage(decimalFromString(t, "-0.4")))
}
