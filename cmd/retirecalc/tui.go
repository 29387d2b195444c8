package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goldira/retirecalc/internal/calculation"
	"github.com/goldira/retirecalc/internal/config"
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/goldira/retirecalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Explore the calculators interactively",
	Long: `Opens an interactive terminal view with one tab per calculator. Every
input change recalculates immediately. When a configuration file is given,
the first scenario of each calculator seeds its tab.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *domain.Configuration
		if len(args) == 1 {
			loaded, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			cfg = loaded
		}

		// log output on stderr would corrupt the alternate screen
		p := tea.NewProgram(tui.NewModel(calculation.NewCalculationEngine(), cfg), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
