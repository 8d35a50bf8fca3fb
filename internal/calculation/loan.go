package calculation

import (
	"time"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// LoanState is the incremental month-stepping simulator for one loan. The
// forecast engine advances one LoanState per loan by exactly one month per
// forecast month, which makes a full forecast linear in the horizon instead
// of re-simulating every schedule from month 1.
type LoanState struct {
	terms   domain.LoanTerms
	horizon int // months to simulate, defaults to the loan term

	month         int // last simulated month, 0 before the first step
	balance       int64
	offset        int64
	totalInterest int64
	totalPayments int64
}

// NewLoanState initializes a simulator for the given terms. horizonMonths
// caps the run; zero or negative means the full loan term.
func NewLoanState(terms domain.LoanTerms, horizonMonths int) *LoanState {
	if horizonMonths <= 0 {
		horizonMonths = terms.TermMonths()
	}
	return &LoanState{
		terms:   terms,
		horizon: horizonMonths,
		balance: terms.StartBalanceCents,
		offset:  terms.OffsetStartCents,
	}
}

// Done reports whether the simulation has finished: the horizon is reached
// or the balance has been paid down to zero.
func (ls *LoanState) Done() bool {
	return ls.month >= ls.horizon || ls.balance <= 0
}

// Balance returns the current loan balance in cents.
func (ls *LoanState) Balance() int64 { return ls.balance }

// TotalInterest returns the interest accumulated so far.
func (ls *LoanState) TotalInterest() int64 { return ls.totalInterest }

// TotalPayments returns the payments accumulated so far.
func (ls *LoanState) TotalPayments() int64 { return ls.totalPayments }

// AdvanceMonth simulates the next month and returns its record. The second
// return is false when the simulation had already finished; the returned
// record then reports the terminal state with zero flows, so callers can
// keep reading payments and balances past payoff.
func (ls *LoanState) AdvanceMonth() (domain.LoanMonth, bool) {
	if ls.Done() {
		ls.month++
		return domain.LoanMonth{
			Month:           ls.month,
			Date:            ls.monthDate(ls.month),
			StartingBalance: ls.balance,
			OffsetBalance:   ls.offset,
			EndingBalance:   ls.balance,
		}, false
	}

	ls.month++
	month := ls.month
	starting := ls.balance

	// 1. Monthly offset contribution lands first.
	ls.offset += ls.terms.OffsetMonthlyContribCents

	// 2. Without redraw the offset cannot exceed the debt it offsets; with
	// redraw it may, effectively banking spare cash.
	if !ls.terms.AllowRedraw && ls.offset > ls.balance {
		ls.offset = ls.balance
	}

	// 3. Interest accrues on the effective balance only.
	effective := ls.balance - ls.offset
	if effective < 0 {
		effective = 0
	}
	interest := InterestOnlyPayment(effective, ls.terms.AnnualRate)

	interestOnly := month <= ls.terms.InterestOnlyMonths()

	var principal, payment int64
	if interestOnly {
		payment = interest
	} else {
		// Re-amortize against the live effective balance and the months
		// still to run. Offset contributions therefore compound into a
		// faster implied payoff.
		remaining := ls.horizon - month + 1
		payment = monthlyPaymentForMonths(effective, ls.terms.AnnualRate, remaining)
		principal = payment - interest
		if principal > ls.balance {
			principal = ls.balance
		}
		if principal < 0 {
			principal = 0
		}
	}

	ls.balance -= principal
	ls.totalInterest += interest
	ls.totalPayments += payment

	return domain.LoanMonth{
		Month:            month,
		Date:             ls.monthDate(month),
		StartingBalance:  starting,
		OffsetBalance:    ls.offset,
		EffectiveBalance: effective,
		InterestCharged:  interest,
		PrincipalPayment: principal,
		TotalPayment:     payment,
		EndingBalance:    ls.balance,
		InterestOnly:     interestOnly,
	}, true
}

func (ls *LoanState) monthDate(month int) time.Time {
	return ls.terms.StartDate.AddDate(0, month-1, 0)
}

// SimulateLoan runs a loan's full schedule. months caps the run; zero or
// negative means the loan term. The loop ends early once the balance reaches
// zero.
func SimulateLoan(terms domain.LoanTerms, months int) domain.LoanSchedule {
	state := NewLoanState(terms, months)
	schedule := domain.LoanSchedule{LoanID: terms.ID}

	for !state.Done() {
		lm, ok := state.AdvanceMonth()
		if !ok {
			break
		}
		schedule.Months = append(schedule.Months, lm)
	}

	schedule.TotalInterest = state.TotalInterest()
	schedule.TotalPayments = state.TotalPayments()
	return schedule
}

// OffsetSavings reports how much interest the offset account saves over the
// given horizon: total interest with the offset zeroed out minus total
// interest as configured. Never negative for a well-formed loan.
func OffsetSavings(terms domain.LoanTerms, months int) int64 {
	bare := terms
	bare.OffsetStartCents = 0
	bare.OffsetMonthlyContribCents = 0

	withOffset := SimulateLoan(terms, months)
	withoutOffset := SimulateLoan(bare, months)

	return withoutOffset.TotalInterest - withOffset.TotalInterest
}

// Refinance derives new loan terms effective from newDate: the balance rolls
// over unchanged and rate, interest-only period and term are replaced.
// Callers needing a schedule re-simulate from the new terms; old and new
// schedules are never spliced.
func Refinance(terms domain.LoanTerms, newDate time.Time, newRate decimal.Decimal, newIoYears, newTermYears int) domain.LoanTerms {
	refinanced := terms
	refinanced.StartDate = newDate
	refinanced.AnnualRate = newRate
	refinanced.InterestOnlyYears = newIoYears
	refinanced.TermYears = newTermYears
	return refinanced
}
