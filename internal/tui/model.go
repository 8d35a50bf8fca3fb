package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/propgo/property-forecast/internal/calculation"
	"github.com/propgo/property-forecast/internal/compare"
	"github.com/propgo/property-forecast/internal/domain"
)

// view identifies the active screen.
type view int

const (
	viewSummary view = iota
	viewChart
	viewCashflow
)

// keyMap defines the keybindings for the forecast browser.
type keyMap struct {
	NextView key.Binding
	Stress   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Stress: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle stress"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the interactive forecast browser. The
// projection runs once at startup; the TUI only changes which slice of the
// result it renders.
type Model struct {
	scenario   *domain.Scenario
	comparison *compare.StressComparison

	currentView view
	showStress  bool
	keys        keyMap

	width  int
	height int

	err error
}

// NewModel builds a Model for the given scenario, running both the base and
// stressed projections up front.
func NewModel(scenario *domain.Scenario) Model {
	m := Model{
		scenario: scenario,
		keys:     defaultKeyMap(),
	}

	comparison, err := compare.RunStressComparison(calculation.NewForecastEngine(), scenario)
	if err != nil {
		m.err = err
		return m
	}
	m.comparison = comparison
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// activeResult returns the forecast currently being browsed.
func (m Model) activeResult() *domain.ForecastResult {
	if m.comparison == nil {
		return nil
	}
	if m.showStress {
		return m.comparison.Stressed
	}
	return m.comparison.Base
}
