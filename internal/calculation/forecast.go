package calculation

import (
	"fmt"
	"time"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

var passiveIncomeRate = decimal.NewFromFloat(0.04)

// ForecastEngine runs month-stepping projections over a scenario. It holds
// no per-run state; the same engine can run any number of scenarios and two
// runs over the same scenario value produce identical output.
type ForecastEngine struct {
	Logger Logger
	Debug  bool
}

// NewForecastEngine creates an engine with a no-op logger.
func NewForecastEngine() *ForecastEngine {
	return &ForecastEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (fe *ForecastEngine) SetLogger(l Logger) {
	if l == nil {
		fe.Logger = NopLogger{}
		return
	}
	fe.Logger = l
}

// RunScenario produces the full monthly forecast series and milestone
// summary for one scenario. The scenario itself is never modified.
func (fe *ForecastEngine) RunScenario(scenario *domain.Scenario) (*domain.ForecastResult, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}
	if scenario.HorizonYears <= 0 {
		return nil, fmt.Errorf("scenario %q: horizon must be at least 1 year, got %d", scenario.Name, scenario.HorizonYears)
	}

	months := scenario.HorizonMonths()
	profile := &scenario.Profile

	afterTaxFactor := decimalOne.Sub(profile.MarginalTaxRate).Sub(profile.LevyRate)
	if afterTaxFactor.LessThan(decimalZero) {
		afterTaxFactor = decimalZero
	}
	salaryMonthlyBase := decimal.NewFromInt(scenario.TotalSalaryCentsPa()).Mul(afterTaxFactor).Div(decimalTwelve)
	livingMonthlyBase := decimal.NewFromInt(profile.LivingExpensesCentsPa).Div(decimalTwelve)

	// Running balances. Cash is carried in whole cents because it only ever
	// receives already-rounded flows; the compounding balances stay in
	// decimal so monthly rounding does not drift the growth path.
	cash := profile.SavingsCents
	super := decimal.NewFromInt(profile.SuperCents)
	portfolio := decimal.NewFromInt(profile.InvestmentsCents + scenario.OtherAssetsCents())

	superMonthlyRate := profile.ReturnSuperPa.Div(decimalTwelve)
	portfolioMonthlyRate := profile.ReturnPortfolioPa.Div(decimalTwelve)

	// One incremental simulator per loan, advanced exactly one month per
	// forecast month.
	loanStates := make([]*LoanState, len(scenario.Loans))
	for i, lt := range scenario.Loans {
		loanStates[i] = NewLoanState(lt, 0)
	}

	soldCredited := make([]bool, len(scenario.Properties))

	series := make([]domain.ForecastMonth, 0, months)

	for month := 1; month <= months; month++ {
		monthDate := scenario.StartDate.AddDate(0, month-1, 0)
		yearsElapsed := float64(month-1) / 12.0

		wageFactor := growthFactor(profile.WageGrowthPa, yearsElapsed)
		cpiFactor := growthFactor(profile.InflationCpiPa, yearsElapsed)

		salary := roundCents(salaryMonthlyBase.Mul(wageFactor))
		living := roundCents(livingMonthlyBase.Mul(cpiFactor))

		var rental, propertyExpenses, propertyValue int64
		for i := range scenario.Properties {
			p := &scenario.Properties[i]
			grown := roundCents(decimal.NewFromInt(p.CurrentValueCents).Mul(growthFactor(p.GrowthPa, yearsElapsed)))

			if p.SoldBy(monthDate) {
				// Gross sale proceeds land in the cash buffer once; any
				// loan discharge is a collaborator concern.
				if !soldCredited[i] {
					soldCredited[i] = true
					cash += grown
					fe.Logger.Debugf("month %d: property %s sold, %d cents credited to cash", month, p.ID, grown)
				}
				continue
			}

			if p.RentedAt(monthDate) {
				weeks := decimal.NewFromInt(52).Sub(p.VacancyWeeksPa)
				rental += roundCents(decimal.NewFromInt(p.RentPerWeekCents).Mul(weeks).Div(decimalTwelve))
			}

			fixed := decimal.NewFromInt(p.AnnualFixedCostsCents()).Div(decimalTwelve)
			// Maintenance tracks the grown value, not the purchase price.
			maintenance := decimal.NewFromInt(grown).Mul(p.MaintenancePct).Div(decimalTwelve)
			propertyExpenses += roundCents(fixed.Add(maintenance))

			propertyValue += grown
		}

		var loanPayments, totalDebt int64
		for _, ls := range loanStates {
			lm, _ := ls.AdvanceMonth()
			loanPayments += lm.TotalPayment
			totalDebt += lm.EndingBalance
		}

		totalIncome := salary + rental
		totalExpenses := living + propertyExpenses + loanPayments
		netCashflow := totalIncome - totalExpenses

		// The buffer may go negative; solvency checks belong to callers.
		cash += netCashflow

		super = super.Mul(decimalOne.Add(superMonthlyRate))
		portfolio = portfolio.Mul(decimalOne.Add(portfolioMonthlyRate))

		superCents := roundCents(super)
		portfolioCents := roundCents(portfolio)

		totalAssets := propertyValue + superCents + portfolioCents + cash
		netWorth := totalAssets - totalDebt
		netWorthPV := PresentValue(netWorth, profile.InflationCpiPa, yearsElapsed)
		passive := roundCents(decimal.NewFromInt(netWorthPV).Mul(passiveIncomeRate).Div(decimalTwelve))

		series = append(series, domain.ForecastMonth{
			Month:                month,
			Date:                 monthDate,
			SalaryIncome:         salary,
			RentalIncome:         rental,
			TotalIncome:          totalIncome,
			LivingExpenses:       living,
			PropertyExpenses:     propertyExpenses,
			LoanPayments:         loanPayments,
			TotalExpenses:        totalExpenses,
			NetCashflow:          netCashflow,
			CashBuffer:           cash,
			PropertyValue:        propertyValue,
			SuperBalance:         superCents,
			PortfolioBalance:     portfolioCents,
			TotalAssets:          totalAssets,
			TotalDebt:            totalDebt,
			NetWorth:             netWorth,
			NetWorthPV:           netWorthPV,
			PassiveIncomeMonthly: passive,
		})
	}

	result := &domain.ForecastResult{
		ScenarioName: scenario.Name,
		GeneratedAt:  time.Now().UTC(),
		Months:       series,
		Summary:      ExtractSummary(series, profile, scenario.StartDate),
	}

	fe.Logger.Infof("scenario %q: %d months projected, final net worth %d cents", scenario.Name, len(series), result.FinalMonth().NetWorth)
	return result, nil
}
