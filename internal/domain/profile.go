package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile holds the household's demographics, macro assumptions and
// current balances. Every income and expense input the forecast uses comes
// from here or from the scenario's properties and loans; the engine carries
// no built-in figures.
type UserProfile struct {
	BirthDate     time.Time `yaml:"birth_date" json:"birth_date"`
	RetirementAge int       `yaml:"retirement_age" json:"retirement_age"`
	State         string    `yaml:"state,omitempty" json:"state,omitempty"`

	// Macro assumptions, annual fractions.
	InflationCpiPa    decimal.Decimal `yaml:"inflation_cpi_pa" json:"inflation_cpi_pa"`
	WageGrowthPa      decimal.Decimal `yaml:"wage_growth_pa" json:"wage_growth_pa"`
	ReturnSuperPa     decimal.Decimal `yaml:"return_super_pa" json:"return_super_pa"`
	ReturnPortfolioPa decimal.Decimal `yaml:"return_portfolio_pa" json:"return_portfolio_pa"`

	// Simplified tax treatment: a flat marginal rate plus levy applied to
	// gross salary. Not authoritative bracket math.
	MarginalTaxRate decimal.Decimal `yaml:"marginal_tax_rate" json:"marginal_tax_rate"`
	LevyRate        decimal.Decimal `yaml:"levy_rate" json:"levy_rate"`

	// Current balances, integer cents. Salary and living expenses are
	// annual amounts.
	SalaryCentsPa         int64 `yaml:"salary_cents_pa" json:"salary_cents_pa"`
	SavingsCents          int64 `yaml:"savings_cents" json:"savings_cents"`
	SuperCents            int64 `yaml:"super_cents" json:"super_cents"`
	InvestmentsCents      int64 `yaml:"investments_cents" json:"investments_cents"`
	LivingExpensesCentsPa int64 `yaml:"living_expenses_cents_pa" json:"living_expenses_cents_pa"`
}

// Age returns the whole-year age at the given date.
func (up *UserProfile) Age(at time.Time) int {
	age := at.Year() - up.BirthDate.Year()
	if at.YearDay() < up.BirthDate.YearDay() {
		age--
	}
	return age
}

// MonthsToRetirement returns the number of months from the given date until
// the profile's retirement age, floored at zero.
func (up *UserProfile) MonthsToRetirement(from time.Time) int {
	months := (up.RetirementAge - up.Age(from)) * 12
	if months < 0 {
		months = 0
	}
	return months
}

// Person is an additional household member carried for collaborators
// (dependants, second income earners). Only SalaryCentsPa participates in
// the forecast; the rest is descriptive.
type Person struct {
	Name         string    `yaml:"name" json:"name"`
	BirthDate    time.Time `yaml:"birth_date" json:"birth_date"`
	SalaryCentsPa int64    `yaml:"salary_cents_pa,omitempty" json:"salary_cents_pa,omitempty"`
}

// OtherAsset is a non-property holding (shares, crypto, a managed fund)
// folded into the portfolio balance at scenario start.
type OtherAsset struct {
	Name         string          `yaml:"name" json:"name"`
	BalanceCents int64           `yaml:"balance_cents" json:"balance_cents"`
	GrowthPa     decimal.Decimal `yaml:"growth_pa,omitempty" json:"growth_pa,omitempty"`
}
