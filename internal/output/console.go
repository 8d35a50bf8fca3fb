package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/propgo/property-forecast/internal/domain"
)

// ConsoleFormatter renders a milestone-focused plain-text report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ForecastResult) ([]byte, error) {
	var buf bytes.Buffer

	title := fmt.Sprintf("FORECAST: %s", result.ScenarioName)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(&buf, "Horizon: %d months\n\n", len(result.Months))

	fmt.Fprintf(&buf, "%-12s %10s %16s %16s %16s %16s %14s\n",
		"Milestone", "Month", "Net Worth", "Net Worth (PV)", "Total Assets", "Total Debt", "Passive p/m")
	fmt.Fprintln(&buf, strings.Repeat("-", 108))

	for _, ms := range result.Summary.Milestones() {
		r := ms.Record
		fmt.Fprintf(&buf, "%-12s %10d %16s %16s %16s %16s %14s\n",
			ms.Label, ms.MonthIndex+1,
			FormatCurrency(r.NetWorth),
			FormatCurrency(r.NetWorthPV),
			FormatCurrency(r.TotalAssets),
			FormatCurrency(r.TotalDebt),
			FormatCurrency(r.PassiveIncomeMonthly))
	}

	final := result.FinalMonth()
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "FINAL MONTH CASHFLOW")
	fmt.Fprintln(&buf, strings.Repeat("-", 30))
	fmt.Fprintf(&buf, "Salary income:      %s\n", FormatCurrency(final.SalaryIncome))
	fmt.Fprintf(&buf, "Rental income:      %s\n", FormatCurrency(final.RentalIncome))
	fmt.Fprintf(&buf, "Living expenses:    %s\n", FormatCurrency(final.LivingExpenses))
	fmt.Fprintf(&buf, "Property expenses:  %s\n", FormatCurrency(final.PropertyExpenses))
	fmt.Fprintf(&buf, "Loan payments:      %s\n", FormatCurrency(final.LoanPayments))
	fmt.Fprintf(&buf, "Net cashflow:       %s\n", FormatCurrency(final.NetCashflow))
	fmt.Fprintf(&buf, "Cash buffer:        %s\n", FormatCurrency(final.CashBuffer))

	return buf.Bytes(), nil
}
