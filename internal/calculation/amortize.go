package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalZero   = decimal.Zero
	decimalTwelve = decimal.NewFromInt(12)
)

// MonthlyPayment computes the fixed monthly principal-and-interest payment
// for a loan using the standard amortization formula
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the number of monthly payments. A zero
// rate degenerates to a straight-line split. The result is rounded to the
// nearest cent.
func MonthlyPayment(principalCents int64, annualRate decimal.Decimal, termYears int) int64 {
	return monthlyPaymentForMonths(principalCents, annualRate, termYears*12)
}

func monthlyPaymentForMonths(principalCents int64, annualRate decimal.Decimal, months int) int64 {
	if months <= 0 || principalCents <= 0 {
		return 0
	}

	principal := decimal.NewFromInt(principalCents)

	if annualRate.IsZero() {
		return roundCents(principal.Div(decimal.NewFromInt(int64(months))))
	}

	// (1+r)^n needs a fractional power, so the factor is computed in
	// float64 and the monetary arithmetic stays in decimal.
	monthlyRate := annualRate.Div(decimalTwelve)
	factor := math.Pow(decimalOne.Add(monthlyRate).InexactFloat64(), float64(months))
	factorDec := decimal.NewFromFloat(factor)

	payment := principal.Mul(monthlyRate).Mul(factorDec).Div(factorDec.Sub(decimalOne))
	return roundCents(payment)
}

// InterestOnlyPayment computes one month's interest on the principal,
// rounded to the nearest cent.
func InterestOnlyPayment(principalCents int64, annualRate decimal.Decimal) int64 {
	if principalCents <= 0 {
		return 0
	}
	return roundCents(decimal.NewFromInt(principalCents).Mul(annualRate).Div(decimalTwelve))
}

// PresentValue discounts a nominal amount back over the given (possibly
// fractional) number of years: nominal / (1+rate)^years, rounded to the
// nearest cent. The rate compounds annually even at fractional-year
// boundaries; that is the contract, not an approximation to fix.
func PresentValue(nominalCents int64, annualDiscountRate decimal.Decimal, years float64) int64 {
	if years == 0 || annualDiscountRate.IsZero() {
		return nominalCents
	}
	factor := math.Pow(decimalOne.Add(annualDiscountRate).InexactFloat64(), years)
	if factor == 0 {
		return nominalCents
	}
	return roundCents(decimal.NewFromInt(nominalCents).Div(decimal.NewFromFloat(factor)))
}

// growthFactor computes (1+rate)^years for a fractional number of years.
func growthFactor(rate decimal.Decimal, years float64) decimal.Decimal {
	if years == 0 || rate.IsZero() {
		return decimalOne
	}
	return decimal.NewFromFloat(math.Pow(decimalOne.Add(rate).InexactFloat64(), years))
}

// roundCents rounds a decimal amount of cents to the nearest whole cent.
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
