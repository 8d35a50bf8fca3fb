package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a single real-estate holding. Growth and rent project forward
// from "now" (the scenario start), not from the purchase date. Monetary
// amounts are integer cents; rates and percentages are annual fractions.
type Property struct {
	ID            string    `yaml:"id" json:"id"`
	Name          string    `yaml:"name" json:"name"`
	PurchaseDate  time.Time `yaml:"purchase_date" json:"purchase_date"`
	PurchasePriceCents int64 `yaml:"purchase_price_cents" json:"purchase_price_cents"`
	CurrentValueCents  int64 `yaml:"current_value_cents" json:"current_value_cents"`

	GrowthPa decimal.Decimal `yaml:"growth_pa" json:"growth_pa"`

	// Annual holding costs. MaintenancePct applies to the grown current
	// value, the rest are fixed cents per year.
	MaintenancePct     decimal.Decimal `yaml:"maintenance_pct" json:"maintenance_pct"`
	StrataCentsPa      int64           `yaml:"strata_cents_pa" json:"strata_cents_pa"`
	RatesCentsPa       int64           `yaml:"rates_cents_pa" json:"rates_cents_pa"`
	InsuranceCentsPa   int64           `yaml:"insurance_cents_pa" json:"insurance_cents_pa"`
	LandTaxCentsPa     int64           `yaml:"land_tax_cents_pa" json:"land_tax_cents_pa"`
	FixedCostsCentsPa  int64           `yaml:"fixed_costs_cents_pa" json:"fixed_costs_cents_pa"`

	RentPerWeekCents int64           `yaml:"rent_per_week_cents" json:"rent_per_week_cents"`
	VacancyWeeksPa   decimal.Decimal `yaml:"vacancy_weeks_pa" json:"vacancy_weeks_pa"`

	DepreciationCentsPa int64 `yaml:"depreciation_cents_pa" json:"depreciation_cents_pa"`

	// Optional lifecycle dates.
	BecomesInvestmentDate *time.Time `yaml:"becomes_investment_date,omitempty" json:"becomes_investment_date,omitempty"`
	BecomesPrimaryDate    *time.Time `yaml:"becomes_primary_date,omitempty" json:"becomes_primary_date,omitempty"`
	SoldDate              *time.Time `yaml:"sold_date,omitempty" json:"sold_date,omitempty"`
}

// SoldBy reports whether the property has been sold as of the given date.
func (p *Property) SoldBy(at time.Time) bool {
	return p.SoldDate != nil && !at.Before(*p.SoldDate)
}

// RentedAt reports whether the property earns rent at the given date: not
// yet sold, already an investment property, and not converted back to a
// primary residence.
func (p *Property) RentedAt(at time.Time) bool {
	if p.SoldBy(at) {
		return false
	}
	if p.BecomesInvestmentDate != nil && at.Before(*p.BecomesInvestmentDate) {
		return false
	}
	if p.BecomesPrimaryDate != nil && !at.Before(*p.BecomesPrimaryDate) {
		return false
	}
	return true
}

// AnnualFixedCostsCents sums the fixed (non-maintenance) holding costs.
func (p *Property) AnnualFixedCostsCents() int64 {
	return p.FixedCostsCentsPa + p.StrataCentsPa + p.RatesCentsPa + p.InsuranceCentsPa + p.LandTaxCentsPa
}
