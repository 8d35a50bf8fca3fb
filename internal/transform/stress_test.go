package transform

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propgo/property-forecast/internal/domain"
)

func stressScenario() *domain.Scenario {
	return &domain.Scenario{
		Name:         "base",
		StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		HorizonYears: 30,
		Properties: []domain.Property{
			{
				ID:             "ip1",
				Name:           "Unit 4",
				GrowthPa:       decimal.NewFromFloat(0.05),
				VacancyWeeksPa: decimal.NewFromInt(2),
			},
			{
				ID:             "ip2",
				Name:           "House 9",
				GrowthPa:       decimal.NewFromFloat(0.02),
				VacancyWeeksPa: decimal.NewFromInt(6),
			},
		},
		Loans: []domain.LoanTerms{
			{ID: "a", AnnualRate: decimal.NewFromFloat(0.06), TermYears: 30},
			{ID: "b", AnnualRate: decimal.NewFromFloat(0.045), TermYears: 25},
		},
		Stress: domain.StressParams{
			RateBumpPct:      decimal.NewFromInt(2),
			GrowthHaircutPct: decimal.NewFromInt(3),
			VacancyWeeks:     decimal.NewFromInt(4),
			BorrowCapDownPct: decimal.NewFromInt(10),
		},
	}
}

func TestStressVariant_AppliesAllAdjustments(t *testing.T) {
	stressed, err := StressVariant(stressScenario())
	require.NoError(t, err)

	// +2% on every loan rate.
	assert.True(t, stressed.Loans[0].AnnualRate.Equal(decimal.NewFromFloat(0.08)),
		"got %s", stressed.Loans[0].AnnualRate)
	assert.True(t, stressed.Loans[1].AnnualRate.Equal(decimal.NewFromFloat(0.065)),
		"got %s", stressed.Loans[1].AnnualRate)

	// -3% on every growth rate; a stressed market may shrink.
	assert.True(t, stressed.Properties[0].GrowthPa.Equal(decimal.NewFromFloat(0.02)))
	assert.True(t, stressed.Properties[1].GrowthPa.Equal(decimal.NewFromFloat(-0.01)))

	// Vacancy is a floor: 2 -> 4, but 6 stays 6.
	assert.True(t, stressed.Properties[0].VacancyWeeksPa.Equal(decimal.NewFromInt(4)))
	assert.True(t, stressed.Properties[1].VacancyWeeksPa.Equal(decimal.NewFromInt(6)))

	assert.Equal(t, "base (stressed)", stressed.Name)
}

func TestStressVariant_NeverMutatesInput(t *testing.T) {
	base := stressScenario()
	before := base.DeepCopy()

	stressed, err := StressVariant(base)
	require.NoError(t, err)

	assert.NotSame(t, base, stressed)
	assert.Equal(t, before, base.DeepCopy(), "the base scenario must be unchanged after the transform")
}

func TestStressVariant_BorrowCapNotApplied(t *testing.T) {
	stressed, err := StressVariant(stressScenario())
	require.NoError(t, err)

	// The borrowing-capacity cut rides along untouched; no component
	// consumes it.
	assert.True(t, stressed.Stress.BorrowCapDownPct.Equal(decimal.NewFromInt(10)))
}

func TestStressVariant_NilBase(t *testing.T) {
	_, err := StressVariant(nil)
	assert.Error(t, err)
}

func TestBumpLoanRates_Validate(t *testing.T) {
	b := &BumpLoanRates{DeltaPct: decimal.NewFromInt(-1)}
	err := b.Validate(stressScenario())
	assert.Error(t, err)

	var terr *TransformError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "bump_loan_rates", terr.TransformName)
}

func TestRaiseVacancyFloor_Validate(t *testing.T) {
	r := &RaiseVacancyFloor{Weeks: decimal.NewFromInt(53)}
	assert.Error(t, r.Validate(stressScenario()))

	r = &RaiseVacancyFloor{Weeks: decimal.NewFromInt(52)}
	assert.NoError(t, r.Validate(stressScenario()))
}

func TestApplyTransforms_EmptyReturnsDeepCopy(t *testing.T) {
	base := stressScenario()

	copied, err := ApplyTransforms(base, nil)
	require.NoError(t, err)

	assert.NotSame(t, base, copied)
	assert.Equal(t, base.Name, copied.Name)

	// Changing the copy leaves the base alone.
	copied.Loans[0].AnnualRate = decimal.NewFromFloat(0.99)
	assert.True(t, base.Loans[0].AnnualRate.Equal(decimal.NewFromFloat(0.06)))
}

func TestApplyTransforms_NilTransformRejected(t *testing.T) {
	_, err := ApplyTransforms(stressScenario(), []ScenarioTransform{nil})
	assert.Error(t, err)
}

func TestApplyTransforms_ChainsInOrder(t *testing.T) {
	base := stressScenario()

	result, err := ApplyTransforms(base, []ScenarioTransform{
		&BumpLoanRates{DeltaPct: decimal.NewFromInt(1)},
		&BumpLoanRates{DeltaPct: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	assert.True(t, result.Loans[0].AnnualRate.Equal(decimal.NewFromFloat(0.08)))
}
