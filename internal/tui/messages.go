package tui

import "github.com/goldira/retirecalc/internal/domain"

// CalculationCompleteMsg carries a recalculated result back to the model
type CalculationCompleteMsg struct {
	Tab    Tab
	Seq    int // results older than the panel's latest request are dropped
	Result *domain.ScenarioResult
	Err    error
}
