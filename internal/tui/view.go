package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/propgo/property-forecast/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	}

	result := m.activeResult()
	if result == nil {
		return statusBarStyle.Render("No forecast loaded") + "\n"
	}

	var sb strings.Builder

	variant := "base"
	if m.showStress {
		variant = "stressed"
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s [%s]", result.ScenarioName, variant)))
	sb.WriteString("\n\n")

	switch m.currentView {
	case viewSummary:
		sb.WriteString(m.renderSummary(result))
	case viewChart:
		sb.WriteString(m.renderChart(result))
	case viewCashflow:
		sb.WriteString(m.renderCashflow(result))
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())
	return sb.String()
}

func (m Model) renderSummary(result *domain.ForecastResult) string {
	cards := make([]string, 0, 5)
	for _, ms := range result.Summary.Milestones() {
		r := ms.Record
		body := lipgloss.JoinVertical(lipgloss.Left,
			metricLabelStyle.Render(fmt.Sprintf("%s (month %d)", ms.Label, ms.MonthIndex+1)),
			metricValueStyle(r.NetWorth).Render(output.FormatCurrency(r.NetWorth)),
			metricLabelStyle.Render("PV "+output.FormatCurrency(r.NetWorthPV)),
			metricLabelStyle.Render("passive "+output.FormatCurrency(r.PassiveIncomeMonthly)+"/m"),
		)
		cards = append(cards, cardStyle.Render(body))
	}

	// Two rows of cards keeps the layout inside narrow terminals.
	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderChart(result *domain.ForecastResult) string {
	points := make([]float64, len(result.Months))
	for i, fm := range result.Months {
		points[i] = float64(fm.NetWorth) / 100.0
	}
	return newASCIIChart("Net worth over time", points).render()
}

func (m Model) renderCashflow(result *domain.ForecastResult) string {
	final := result.FinalMonth()
	rows := [][2]string{
		{"Salary income", output.FormatCurrency(final.SalaryIncome)},
		{"Rental income", output.FormatCurrency(final.RentalIncome)},
		{"Living expenses", output.FormatCurrency(final.LivingExpenses)},
		{"Property expenses", output.FormatCurrency(final.PropertyExpenses)},
		{"Loan payments", output.FormatCurrency(final.LoanPayments)},
		{"Net cashflow", output.FormatCurrency(final.NetCashflow)},
		{"Cash buffer", output.FormatCurrency(final.CashBuffer)},
	}

	var sb strings.Builder
	sb.WriteString(metricLabelStyle.Render(fmt.Sprintf("Final month (%d)", final.Month)))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %16s\n", row[0], row[1]))
	}
	return cardStyle.Render(sb.String())
}

func (m Model) renderStatusBar() string {
	parts := []string{
		helpKeyStyle.Render("tab") + statusBarStyle.Render(" next view"),
		helpKeyStyle.Render("s") + statusBarStyle.Render(" toggle stress"),
		helpKeyStyle.Render("q") + statusBarStyle.Render(" quit"),
	}
	return strings.Join(parts, statusBarStyle.Render("  •  "))
}
