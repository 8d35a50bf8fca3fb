package domain

import "time"

// ForecastMonth is the engine's per-month output record. Amounts are integer
// cents. Records are computed once per forecast run, indexed 1..horizon
// months, and never mutated after creation.
type ForecastMonth struct {
	Month int       `json:"month"` // 1-based
	Date  time.Time `json:"date"`

	// Income breakdown, monthly cents.
	SalaryIncome int64 `json:"salaryIncome"`
	RentalIncome int64 `json:"rentalIncome"`
	TotalIncome  int64 `json:"totalIncome"`

	// Expense breakdown, monthly cents.
	LivingExpenses   int64 `json:"livingExpenses"`
	PropertyExpenses int64 `json:"propertyExpenses"`
	LoanPayments     int64 `json:"loanPayments"`
	TotalExpenses    int64 `json:"totalExpenses"`

	NetCashflow int64 `json:"netCashflow"`
	CashBuffer  int64 `json:"cashBuffer"`

	// Asset balances.
	PropertyValue    int64 `json:"propertyValue"`
	SuperBalance     int64 `json:"superBalance"`
	PortfolioBalance int64 `json:"portfolioBalance"`
	TotalAssets      int64 `json:"totalAssets"`
	TotalDebt        int64 `json:"totalDebt"`

	NetWorth   int64 `json:"netWorth"`
	NetWorthPV int64 `json:"netWorthPv"`

	// Annualized 4%-of-net-worth rule, reported monthly.
	PassiveIncomeMonthly int64 `json:"passiveIncomeMonthly"`
}

// Milestone labels used by the summary extractor and formatters.
const (
	MilestoneNow        = "now"
	MilestoneTenYears   = "10y"
	MilestoneTwentyYears = "20y"
	MilestoneRetirement = "retirement"
	MilestoneHorizonEnd = "horizon"
)

// MilestoneSnapshot is one named forecast record selected (not recomputed)
// from a forecast series.
type MilestoneSnapshot struct {
	Label      string        `json:"label"`
	MonthIndex int           `json:"monthIndex"` // 0-based index into the series
	Record     ForecastMonth `json:"record"`
}

// ForecastSummary holds the five fixed milestone snapshots of a forecast.
type ForecastSummary struct {
	Now         MilestoneSnapshot `json:"now"`
	TenYears    MilestoneSnapshot `json:"tenYears"`
	TwentyYears MilestoneSnapshot `json:"twentyYears"`
	Retirement  MilestoneSnapshot `json:"retirement"`
	HorizonEnd  MilestoneSnapshot `json:"horizonEnd"`
}

// Milestones returns the snapshots in display order.
func (fs *ForecastSummary) Milestones() []MilestoneSnapshot {
	return []MilestoneSnapshot{fs.Now, fs.TenYears, fs.TwentyYears, fs.Retirement, fs.HorizonEnd}
}

// ForecastResult is a complete forecast run for one scenario: the full
// monthly series plus the milestone summary.
type ForecastResult struct {
	ScenarioName string          `json:"scenarioName"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	Months       []ForecastMonth `json:"months"`
	Summary      ForecastSummary `json:"summary"`
}

// FinalMonth returns the last record in the series, or a zero record for an
// empty run.
func (fr *ForecastResult) FinalMonth() ForecastMonth {
	if len(fr.Months) == 0 {
		return ForecastMonth{}
	}
	return fr.Months[len(fr.Months)-1]
}
