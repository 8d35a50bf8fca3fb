package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario is the aggregate root the engine consumes: one household profile,
// its properties, loans and other holdings, the projection horizon, and the
// stress parameters used to derive a pessimistic variant. A Scenario is a
// pure value; transforms return new Scenario values and never mutate the
// input.
type Scenario struct {
	Name         string       `yaml:"name" json:"name"`
	StartDate    time.Time    `yaml:"start_date" json:"start_date"`
	HorizonYears int          `yaml:"horizon_years" json:"horizon_years"`
	Profile      UserProfile  `yaml:"profile" json:"profile"`
	Properties   []Property   `yaml:"properties" json:"properties"`
	Loans        []LoanTerms  `yaml:"loans" json:"loans"`
	People       []Person     `yaml:"people,omitempty" json:"people,omitempty"`
	OtherAssets  []OtherAsset `yaml:"other_assets,omitempty" json:"other_assets,omitempty"`
	Stress       StressParams `yaml:"stress" json:"stress"`
}

// StressParams are the uniform pessimistic adjustments applied when deriving
// a stress variant. Percentages are whole points (2 means +2% on rates).
//
// BorrowCapDownPct is carried on the scenario for collaborators that model
// borrowing capacity but is not applied by the stress transform or the
// forecast engine; neither models new borrowing.
type StressParams struct {
	RateBumpPct      decimal.Decimal `yaml:"rate_bump_pct" json:"rate_bump_pct"`
	GrowthHaircutPct decimal.Decimal `yaml:"growth_haircut_pct" json:"growth_haircut_pct"`
	VacancyWeeks     decimal.Decimal `yaml:"vacancy_weeks" json:"vacancy_weeks"`
	BorrowCapDownPct decimal.Decimal `yaml:"borrow_cap_down_pct" json:"borrow_cap_down_pct"`
}

// HorizonMonths returns the projection horizon in months.
func (s *Scenario) HorizonMonths() int {
	return s.HorizonYears * 12
}

// LoanByID returns the loan with the given id, or nil.
func (s *Scenario) LoanByID(id string) *LoanTerms {
	for i := range s.Loans {
		if s.Loans[i].ID == id {
			return &s.Loans[i]
		}
	}
	return nil
}

// TotalSalaryCentsPa sums the profile salary and any additional earners.
func (s *Scenario) TotalSalaryCentsPa() int64 {
	total := s.Profile.SalaryCentsPa
	for _, p := range s.People {
		total += p.SalaryCentsPa
	}
	return total
}

// OtherAssetsCents sums the starting balances of non-property holdings.
func (s *Scenario) OtherAssetsCents() int64 {
	var total int64
	for _, a := range s.OtherAssets {
		total += a.BalanceCents
	}
	return total
}

// DeepCopy creates a completely independent copy of the scenario. Slices and
// the pointer-valued lifecycle dates are duplicated so transforms can modify
// the copy freely.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}

	copied := *s

	copied.Properties = make([]Property, len(s.Properties))
	for i, p := range s.Properties {
		cp := p
		cp.BecomesInvestmentDate = copyTimePtr(p.BecomesInvestmentDate)
		cp.BecomesPrimaryDate = copyTimePtr(p.BecomesPrimaryDate)
		cp.SoldDate = copyTimePtr(p.SoldDate)
		copied.Properties[i] = cp
	}

	copied.Loans = append([]LoanTerms(nil), s.Loans...)
	copied.People = append([]Person(nil), s.People...)
	copied.OtherAssets = append([]OtherAsset(nil), s.OtherAssets...)

	return &copied
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
