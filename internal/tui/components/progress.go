package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goldira/retirecalc/internal/tui/tuistyles"
)

// ProgressBar shows how far current savings are toward a target
type ProgressBar struct {
	Percent float64 // 0..100
	Width   int
	Label   string
}

// NewProgressBar creates a bar; percent is clamped to 0..100
func NewProgressBar(percent float64) *ProgressBar {
	return &ProgressBar{
		Percent: math.Max(0, math.Min(100, percent)),
		Width:   40,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// IsComplete reports whether the target has been reached
func (p *ProgressBar) IsComplete() bool {
	return p.Percent >= 100
}

// Filled returns the number of filled cells
func (p *ProgressBar) Filled() int {
	filled := int(float64(p.Width) * p.Percent / 100)
	if filled > p.Width {
		filled = p.Width
	}
	return filled
}

// Render returns the styled bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(p.Label))
		content.WriteString("\n")
	}

	color := tuistyles.ColorAccent
	if p.IsComplete() {
		color = tuistyles.ColorSuccess
	}
	filled := p.Filled()

	content.WriteString("[")
	content.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", p.Width-filled)))
	content.WriteString("] ")
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%.1f%%", p.Percent)))

	return content.String()
}
