package transform

import (
	"fmt"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// BumpLoanRates raises every loan's annual rate by DeltaPct whole points
// (2 means +0.02 on the rate fraction).
type BumpLoanRates struct {
	DeltaPct decimal.Decimal
}

func (b *BumpLoanRates) Name() string { return "bump_loan_rates" }

func (b *BumpLoanRates) Description() string {
	return fmt.Sprintf("Raise every loan rate by %s%%", b.DeltaPct.StringFixed(2))
}

func (b *BumpLoanRates) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(b.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if b.DeltaPct.LessThan(decimal.Zero) {
		return NewTransformError(b.Name(), "validate", fmt.Sprintf("rate bump must be non-negative, got %s", b.DeltaPct.String()), nil)
	}
	return nil
}

func (b *BumpLoanRates) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	delta := b.DeltaPct.Div(decimalHundred)
	for i := range modified.Loans {
		modified.Loans[i].AnnualRate = modified.Loans[i].AnnualRate.Add(delta)
	}
	return modified, nil
}

// HaircutGrowth lowers every property's annual growth rate by DeltaPct whole
// points. Rates may go negative; a stressed market can fall.
type HaircutGrowth struct {
	DeltaPct decimal.Decimal
}

func (h *HaircutGrowth) Name() string { return "haircut_growth" }

func (h *HaircutGrowth) Description() string {
	return fmt.Sprintf("Lower every property growth rate by %s%%", h.DeltaPct.StringFixed(2))
}

func (h *HaircutGrowth) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(h.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if h.DeltaPct.LessThan(decimal.Zero) {
		return NewTransformError(h.Name(), "validate", fmt.Sprintf("growth haircut must be non-negative, got %s", h.DeltaPct.String()), nil)
	}
	return nil
}

func (h *HaircutGrowth) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	delta := h.DeltaPct.Div(decimalHundred)
	for i := range modified.Properties {
		modified.Properties[i].GrowthPa = modified.Properties[i].GrowthPa.Sub(delta)
	}
	return modified, nil
}

// RaiseVacancyFloor lifts every property's vacancy allowance to at least
// Weeks per year; properties already assuming worse keep their own figure.
type RaiseVacancyFloor struct {
	Weeks decimal.Decimal
}

func (r *RaiseVacancyFloor) Name() string { return "raise_vacancy_floor" }

func (r *RaiseVacancyFloor) Description() string {
	return fmt.Sprintf("Raise every property's vacancy to at least %s weeks/year", r.Weeks.StringFixed(1))
}

func (r *RaiseVacancyFloor) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(r.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if r.Weeks.LessThan(decimal.Zero) || r.Weeks.GreaterThan(decimal.NewFromInt(52)) {
		return NewTransformError(r.Name(), "validate", fmt.Sprintf("vacancy floor must be between 0 and 52 weeks, got %s", r.Weeks.String()), nil)
	}
	return nil
}

func (r *RaiseVacancyFloor) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	for i := range modified.Properties {
		if modified.Properties[i].VacancyWeeksPa.LessThan(r.Weeks) {
			modified.Properties[i].VacancyWeeksPa = r.Weeks
		}
	}
	return modified, nil
}

// StressVariant derives the pessimistic variant of a scenario from its own
// stress parameters: bumped loan rates, haircut growth, raised vacancy
// floors. The borrowing-capacity cut on StressParams is deliberately not
// applied here; nothing downstream models new borrowing.
func StressVariant(base *domain.Scenario) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	stressed, err := ApplyTransforms(base, []ScenarioTransform{
		&BumpLoanRates{DeltaPct: base.Stress.RateBumpPct},
		&HaircutGrowth{DeltaPct: base.Stress.GrowthHaircutPct},
		&RaiseVacancyFloor{Weeks: base.Stress.VacancyWeeks},
	})
	if err != nil {
		return nil, err
	}

	if stressed.Name != "" {
		stressed.Name = stressed.Name + " (stressed)"
	} else {
		stressed.Name = "stressed"
	}
	return stressed, nil
}
