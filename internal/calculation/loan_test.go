package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propgo/property-forecast/internal/domain"
)

func testLoan() domain.LoanTerms {
	return domain.LoanTerms{
		ID:                        "home",
		StartDate:                 time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalanceCents:         77_056_100, // $770,561.00
		AnnualRate:                decimal.NewFromFloat(0.06),
		InterestOnlyYears:         2,
		TermYears:                 30,
		OffsetStartCents:          5_000_000,
		OffsetMonthlyContribCents: 200_000,
		AllowRedraw:               true,
	}
}

func TestSimulateLoan_FirstMonthWithOffset(t *testing.T) {
	schedule := SimulateLoan(testLoan(), 1)
	require.Len(t, schedule.Months, 1)

	m := schedule.Months[0]
	// Offset contribution lands before interest: 5,000,000 + 200,000.
	assert.Equal(t, int64(5_200_000), m.OffsetBalance)
	assert.Equal(t, int64(71_856_100), m.EffectiveBalance)
	// round(71,856,100 * 0.005) = round(359,280.5)
	assert.Equal(t, int64(359_281), m.InterestCharged)
	assert.True(t, m.InterestOnly, "Month 1 is inside the 2-year IO period")
	assert.Zero(t, m.PrincipalPayment)
	assert.Equal(t, int64(359_281), m.TotalPayment)
	assert.Equal(t, m.StartingBalance, m.EndingBalance)
}

func TestSimulateLoan_BalanceIdentityEveryMonth(t *testing.T) {
	schedule := SimulateLoan(testLoan(), 0)

	for _, m := range schedule.Months {
		assert.Equal(t, m.StartingBalance-m.PrincipalPayment, m.EndingBalance,
			"month %d: ending balance must equal starting minus principal", m.Month)
		assert.GreaterOrEqual(t, m.EffectiveBalance, int64(0), "month %d", m.Month)
		assert.LessOrEqual(t, m.EffectiveBalance, m.StartingBalance, "month %d", m.Month)
	}
}

func TestSimulateLoan_OffsetClampWithoutRedraw(t *testing.T) {
	terms := testLoan()
	terms.AllowRedraw = false
	terms.OffsetMonthlyContribCents = 500_000

	schedule := SimulateLoan(terms, 0)

	prev := terms.StartBalanceCents
	for _, m := range schedule.Months {
		assert.LessOrEqual(t, m.OffsetBalance, m.StartingBalance,
			"month %d: offset must never exceed the balance it offsets", m.Month)
		assert.LessOrEqual(t, m.EndingBalance, prev,
			"month %d: balance must be non-increasing without redraw", m.Month)
		prev = m.EndingBalance
	}
}

func TestSimulateLoan_RedrawAllowsOffsetAboveBalance(t *testing.T) {
	terms := domain.LoanTerms{
		ID:                        "small",
		StartDate:                 time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalanceCents:         1_000_000,
		AnnualRate:                decimal.NewFromFloat(0.05),
		TermYears:                 5,
		OffsetStartCents:          900_000,
		OffsetMonthlyContribCents: 300_000,
		AllowRedraw:               true,
	}

	schedule := SimulateLoan(terms, 0)
	require.NotEmpty(t, schedule.Months)

	last := schedule.Months[len(schedule.Months)-1]
	assert.Greater(t, last.OffsetBalance, last.StartingBalance,
		"with redraw the offset may bank beyond the loan balance")
	assert.Zero(t, last.EffectiveBalance)
}

func TestSimulateLoan_PaysOffExactlyAtTerm(t *testing.T) {
	terms := domain.LoanTerms{
		ID:                "plain",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalanceCents: 50_000_000,
		AnnualRate:        decimal.NewFromFloat(0.055),
		TermYears:         10,
	}

	schedule := SimulateLoan(terms, 0)

	require.Len(t, schedule.Months, terms.TermMonths())
	assert.Zero(t, schedule.Months[len(schedule.Months)-1].EndingBalance,
		"final month's re-amortized payment clears the balance exactly")
}

func TestSimulateLoan_ZeroRate(t *testing.T) {
	terms := domain.LoanTerms{
		ID:                "interest-free",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalanceCents: 1_200_000,
		AnnualRate:        decimal.Zero,
		TermYears:         1,
	}

	schedule := SimulateLoan(terms, 0)
	require.Len(t, schedule.Months, 12)

	for _, m := range schedule.Months {
		assert.Zero(t, m.InterestCharged)
	}
	assert.Zero(t, schedule.TotalInterest)
	assert.Zero(t, schedule.Months[11].EndingBalance)
}

func TestSimulateLoan_Totals(t *testing.T) {
	schedule := SimulateLoan(testLoan(), 0)

	var interest, payments int64
	for _, m := range schedule.Months {
		interest += m.InterestCharged
		payments += m.TotalPayment
	}
	assert.Equal(t, interest, schedule.TotalInterest)
	assert.Equal(t, payments, schedule.TotalPayments)
}

func TestLoanState_MatchesBatchSimulation(t *testing.T) {
	terms := testLoan()
	schedule := SimulateLoan(terms, 0)
	state := NewLoanState(terms, 0)

	for i := 0; i < 48; i++ {
		lm, ok := state.AdvanceMonth()
		require.True(t, ok)
		assert.Equal(t, schedule.Months[i], lm, "incremental step %d must match the batch schedule", i+1)
	}
}

func TestLoanState_PastPayoffReportsTerminalState(t *testing.T) {
	terms := domain.LoanTerms{
		ID:                "short",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StartBalanceCents: 600_000,
		AnnualRate:        decimal.NewFromFloat(0.05),
		TermYears:         1,
	}
	state := NewLoanState(terms, 0)

	for i := 0; i < 12; i++ {
		_, ok := state.AdvanceMonth()
		require.True(t, ok)
	}
	require.True(t, state.Done())

	lm, ok := state.AdvanceMonth()
	assert.False(t, ok)
	assert.Zero(t, lm.TotalPayment)
	assert.Zero(t, lm.EndingBalance)
}

func TestOffsetSavings_NeverNegative(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
	}{
		{"starting offset and contributions", testLoan()},
		{
			"contributions only",
			domain.LoanTerms{
				ID:                        "contrib",
				StartDate:                 time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				StartBalanceCents:         40_000_000,
				AnnualRate:                decimal.NewFromFloat(0.065),
				TermYears:                 25,
				OffsetMonthlyContribCents: 100_000,
				AllowRedraw:               false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savings := OffsetSavings(tt.terms, 0)
			assert.Greater(t, savings, int64(0), "offsetting must never increase total interest")
		})
	}
}

func TestOffsetSavings_ZeroWithoutOffset(t *testing.T) {
	terms := testLoan()
	terms.OffsetStartCents = 0
	terms.OffsetMonthlyContribCents = 0

	assert.Zero(t, OffsetSavings(terms, 0))
}

func TestRefinance(t *testing.T) {
	original := testLoan()
	newDate := time.Date(2031, 7, 1, 0, 0, 0, 0, time.UTC)

	refinanced := Refinance(original, newDate, decimal.NewFromFloat(0.045), 0, 25)

	assert.Equal(t, newDate, refinanced.StartDate)
	assert.True(t, refinanced.AnnualRate.Equal(decimal.NewFromFloat(0.045)))
	assert.Zero(t, refinanced.InterestOnlyYears)
	assert.Equal(t, 25, refinanced.TermYears)
	assert.Equal(t, original.StartBalanceCents, refinanced.StartBalanceCents)

	// The original terms are untouched.
	assert.Equal(t, testLoan(), original)
}
