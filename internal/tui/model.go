package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/domain"
)

// Model is the interactive calculator. Every input change reruns the
// calculator of the active tab.
type Model struct {
	engine      *calculation.CalculationEngine
	assumptions domain.Assumptions

	panels []*panel
	active Tab

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates the model. When cfg is non-nil the first scenario of
// each calculator seeds that tab's inputs.
func NewModel(engine *calculation.CalculationEngine, cfg *domain.Configuration) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}

	var formulas []string
	for _, f := range calculation.CalPERSFormulas() {
		formulas = append(formulas, string(f.ID))
	}

	m := Model{
		engine: engine,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  100,
		height: 30,
	}
	for t := Tab(0); t < tabCount; t++ {
		m.panels = append(m.panels, newPanel(t, formulas))
	}

	if cfg != nil {
		m.assumptions = cfg.Assumptions
		seeded := map[Tab]bool{}
		for _, s := range cfg.Scenarios {
			t, ok := tabFor(s.Calculator)
			if !ok || seeded[t] {
				continue
			}
			m.panels[t].seed(s)
			seeded[t] = true
		}
	}
	return m
}

// Init calculates every tab once
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panels))
	for _, p := range m.panels {
		cmds = append(cmds, m.calculateCmd(p))
	}
	return tea.Batch(cmds...)
}

// Active returns the selected tab
func (m Model) Active() Tab {
	return m.active
}

// Result returns the latest result of a tab, nil before the first calculation
func (m Model) Result(t Tab) *domain.ScenarioResult {
	return m.panels[t].result
}

// Err returns the latest calculation error of a tab
func (m Model) Err(t Tab) error {
	return m.panels[t].err
}

// calculateCmd snapshots the panel's inputs and runs them off the update loop
func (m Model) calculateCmd(p *panel) tea.Cmd {
	engine := m.engine
	assumptions := m.assumptions
	scenario := p.scenario()
	tab := p.tab
	p.seq++
	seq := p.seq
	return func() tea.Msg {
		result, err := engine.RunScenario(context.Background(), assumptions, scenario)
		return CalculationCompleteMsg{Tab: tab, Seq: seq, Result: result, Err: err}
	}
}
