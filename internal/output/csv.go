package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/propgo/property-forecast/internal/domain"
)

// CSVFormatter emits the full monthly series, one row per forecast month.
// Amounts stay in integer cents so downstream tooling never re-parses
// currency strings.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ForecastResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Month", "Date",
		"SalaryIncome", "RentalIncome", "TotalIncome",
		"LivingExpenses", "PropertyExpenses", "LoanPayments", "TotalExpenses",
		"NetCashflow", "CashBuffer",
		"PropertyValue", "SuperBalance", "PortfolioBalance",
		"TotalAssets", "TotalDebt",
		"NetWorth", "NetWorthPV", "PassiveIncomeMonthly",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, m := range result.Months {
		row := []string{
			strconv.Itoa(m.Month),
			m.Date.Format("2006-01-02"),
			centsToString(m.SalaryIncome),
			centsToString(m.RentalIncome),
			centsToString(m.TotalIncome),
			centsToString(m.LivingExpenses),
			centsToString(m.PropertyExpenses),
			centsToString(m.LoanPayments),
			centsToString(m.TotalExpenses),
			centsToString(m.NetCashflow),
			centsToString(m.CashBuffer),
			centsToString(m.PropertyValue),
			centsToString(m.SuperBalance),
			centsToString(m.PortfolioBalance),
			centsToString(m.TotalAssets),
			centsToString(m.TotalDebt),
			centsToString(m.NetWorth),
			centsToString(m.NetWorthPV),
			centsToString(m.PassiveIncomeMonthly),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func centsToString(cents int64) string {
	return strconv.FormatInt(cents, 10)
}
