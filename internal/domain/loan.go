package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanTerms describes a single loan with an attached offset account.
// All monetary amounts are integer cents; rates are annual fractions
// (0.06 for 6%). A LoanTerms value is immutable input to a simulation:
// each run produces a fresh schedule and never writes back.
type LoanTerms struct {
	ID                      string          `yaml:"id" json:"id"`
	Name                    string          `yaml:"name,omitempty" json:"name,omitempty"`
	StartDate               time.Time       `yaml:"start_date" json:"start_date"`
	StartBalanceCents       int64           `yaml:"start_balance_cents" json:"start_balance_cents"`
	AnnualRate              decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	InterestOnlyYears       int             `yaml:"interest_only_years" json:"interest_only_years"`
	TermYears               int             `yaml:"term_years" json:"term_years"`
	OffsetStartCents        int64           `yaml:"offset_start_cents" json:"offset_start_cents"`
	OffsetMonthlyContribCents int64         `yaml:"offset_monthly_contrib_cents" json:"offset_monthly_contrib_cents"`
	AllowRedraw             bool            `yaml:"allow_redraw" json:"allow_redraw"`
}

// TermMonths returns the loan term expressed in months.
func (lt LoanTerms) TermMonths() int {
	return lt.TermYears * 12
}

// InterestOnlyMonths returns the length of the interest-only period in months.
func (lt LoanTerms) InterestOnlyMonths() int {
	return lt.InterestOnlyYears * 12
}

// HasOffset reports whether the loan carries any offset funds or contributions.
func (lt LoanTerms) HasOffset() bool {
	return lt.OffsetStartCents > 0 || lt.OffsetMonthlyContribCents > 0
}

// LoanMonth is one simulated month of a loan schedule. EndingBalance always
// equals StartingBalance minus PrincipalPayment, and EffectiveBalance is
// never negative.
type LoanMonth struct {
	Month            int       `json:"month"` // 1-based
	Date             time.Time `json:"date"`
	StartingBalance  int64     `json:"startingBalance"`
	OffsetBalance    int64     `json:"offsetBalance"`
	EffectiveBalance int64     `json:"effectiveBalance"`
	InterestCharged  int64     `json:"interestCharged"`
	PrincipalPayment int64     `json:"principalPayment"`
	TotalPayment     int64     `json:"totalPayment"`
	EndingBalance    int64     `json:"endingBalance"`
	InterestOnly     bool      `json:"interestOnly"`
}

// LoanSchedule is the full month-by-month simulation of one loan plus
// run totals. Produced fresh per simulation call.
type LoanSchedule struct {
	LoanID        string      `json:"loanId"`
	Months        []LoanMonth `json:"months"`
	TotalInterest int64       `json:"totalInterest"`
	TotalPayments int64       `json:"totalPayments"`
}

// BalanceAt returns the ending balance after the given 1-based month. Months
// past the end of the schedule return the final balance; month 0 returns the
// first month's starting balance.
func (ls *LoanSchedule) BalanceAt(month int) int64 {
	if len(ls.Months) == 0 {
		return 0
	}
	if month <= 0 {
		return ls.Months[0].StartingBalance
	}
	if month > len(ls.Months) {
		month = len(ls.Months)
	}
	return ls.Months[month-1].EndingBalance
}
