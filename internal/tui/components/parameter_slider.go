package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goldira/retirecalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider is one adjustable calculator input. Key is the sweep
// parameter name the value feeds, e.g. "expected_return_pct".
type ParameterSlider struct {
	Key         string
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Unit        string // e.g. "%", " yrs"
	Prefix      string // e.g. "$"
	Format      string // e.g. "%.1f"
	Width       int
	IsFocused   bool
	Description string

	// Choices turns the slider into a selector over named options; Value
	// is then the index of the selected choice.
	Choices []string
}

// NewParameterSlider creates a slider clamped to [min, max].
func NewParameterSlider(key, label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Key:    key,
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// NewChoiceSlider creates a selector over choices starting at selected.
func NewChoiceSlider(key, label string, choices []string, selected string) *ParameterSlider {
	p := NewParameterSlider(key, label, 0, 0, float64(len(choices)-1), 1)
	p.Choices = choices
	for i, c := range choices {
		if c == selected {
			p.Value = float64(i)
		}
	}
	return p
}

// Choice returns the selected choice, or "" for numeric sliders.
func (p *ParameterSlider) Choice() string {
	if len(p.Choices) == 0 {
		return ""
	}
	return p.Choices[p.Int()]
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithPrefix sets the value prefix
func (p *ParameterSlider) WithPrefix(prefix string) *ParameterSlider {
	p.Prefix = prefix
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithDescription adds help text shown under the bar
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment moves one step up, stopping at Max. It reports whether the
// value changed.
func (p *ParameterSlider) Increment() bool {
	return p.SetValue(p.Value + p.Step)
}

// Decrement moves one step down, stopping at Min. It reports whether the
// value changed.
func (p *ParameterSlider) Decrement() bool {
	return p.SetValue(p.Value - p.Step)
}

// SetValue clamps value to the range and snaps it to the step grid. It
// reports whether the value changed.
func (p *ParameterSlider) SetValue(value float64) bool {
	value = math.Max(p.Min, math.Min(p.Max, value))
	if p.Step > 0 {
		value = p.Min + math.Round((value-p.Min)/p.Step)*p.Step
		value = math.Min(p.Max, value)
	}
	// keep float noise out of displayed and decimal values
	value = math.Round(value*1e6) / 1e6
	changed := value != p.Value
	p.Value = value
	return changed
}

// Decimal returns the value for the calculators.
func (p *ParameterSlider) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Value)
}

// Int returns the value rounded to a whole number, for ages.
func (p *ParameterSlider) Int() int {
	return int(math.Round(p.Value))
}

// Percentage returns the position within the range, 0..1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// FormattedValue is the value with its prefix and unit.
func (p *ParameterSlider) FormattedValue() string {
	return p.format(p.Value)
}

func (p *ParameterSlider) format(v float64) string {
	if len(p.Choices) > 0 {
		return p.Choices[int(math.Round(v))]
	}
	return p.Prefix + fmt.Sprintf(p.Format, v) + p.Unit
}

// Render returns the full slider: label, value, bar and range.
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.FormattedValue()))
	content.WriteString("\n")
	content.WriteString(p.renderBar(p.Width))

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	if len(p.Choices) > 0 {
		content.WriteString(rangeStyle.Render(strings.Join(p.Choices, " / ")))
	} else {
		content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.format(p.Min), p.format(p.Max))))
	}

	if p.Description != "" && p.IsFocused {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

// RenderCompact returns a single-line version with a short bar
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(p.Label+":"),
		valueStyle.Render(p.FormattedValue()),
		p.renderBar(10))
}

func (p *ParameterSlider) renderBar(width int) string {
	if width < 1 {
		width = 1
	}
	thumb := int(math.Round(float64(width-1) * p.Percentage()))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := width - thumb - 1; rest > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}
