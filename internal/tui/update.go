package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CalculationCompleteMsg:
		if msg.Tab < 0 || msg.Tab >= tabCount {
			return m, nil
		}
		p := m.panels[msg.Tab]
		if msg.Seq < p.seq {
			return m, nil
		}
		if msg.Err != nil {
			p.err = msg.Err
			return m, nil
		}
		if p.result != nil {
			if prev, ok := headline(p.result); ok {
				p.previous = &prev
			}
		}
		p.err = nil
		p.result = msg.Result
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.panels[m.active]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % tabCount

	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active + tabCount - 1) % tabCount

	case key.Matches(msg, m.keys.Up):
		p.focus(p.focused - 1)

	case key.Matches(msg, m.keys.Down):
		p.focus(p.focused + 1)

	case key.Matches(msg, m.keys.Increase):
		if s := p.focusedSlider(); s != nil && s.Increment() {
			return m, m.calculateCmd(p)
		}

	case key.Matches(msg, m.keys.Decrease):
		if s := p.focusedSlider(); s != nil && s.Decrement() {
			return m, m.calculateCmd(p)
		}
	}

	return m, nil
}
