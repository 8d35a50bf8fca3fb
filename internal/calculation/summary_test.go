package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propgo/property-forecast/internal/domain"
)

func makeSeries(n int) []domain.ForecastMonth {
	series := make([]domain.ForecastMonth, n)
	for i := range series {
		series[i] = domain.ForecastMonth{Month: i + 1, NetWorth: int64(i) * 1_000}
	}
	return series
}

func summaryProfile() *domain.UserProfile {
	// Age 40 at the start date below, retiring at 65: 300 months out.
	return &domain.UserProfile{
		BirthDate:     time.Date(1986, 1, 1, 0, 0, 0, 0, time.UTC),
		RetirementAge: 65,
	}
}

func TestExtractSummary_FixedMilestones(t *testing.T) {
	series := makeSeries(360)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	summary := ExtractSummary(series, summaryProfile(), start)

	assert.Equal(t, 0, summary.Now.MonthIndex)
	assert.Equal(t, 119, summary.TenYears.MonthIndex)
	assert.Equal(t, 239, summary.TwentyYears.MonthIndex)
	assert.Equal(t, 300, summary.Retirement.MonthIndex)
	assert.Equal(t, 359, summary.HorizonEnd.MonthIndex)

	// Selection, never recomputation.
	assert.Equal(t, series[119], summary.TenYears.Record)
	assert.Equal(t, series[300], summary.Retirement.Record)
}

func TestExtractSummary_Labels(t *testing.T) {
	summary := ExtractSummary(makeSeries(360), summaryProfile(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	labels := make([]string, 0, 5)
	for _, ms := range summary.Milestones() {
		labels = append(labels, ms.Label)
	}
	assert.Equal(t, []string{
		domain.MilestoneNow,
		domain.MilestoneTenYears,
		domain.MilestoneTwentyYears,
		domain.MilestoneRetirement,
		domain.MilestoneHorizonEnd,
	}, labels)
}

func TestExtractSummary_ClampsToShortSeries(t *testing.T) {
	series := makeSeries(60) // 5-year horizon
	summary := ExtractSummary(series, summaryProfile(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	last := len(series) - 1
	assert.Equal(t, last, summary.TenYears.MonthIndex)
	assert.Equal(t, last, summary.TwentyYears.MonthIndex)
	assert.Equal(t, last, summary.Retirement.MonthIndex)
	assert.Equal(t, last, summary.HorizonEnd.MonthIndex)
	assert.Equal(t, series[last], summary.HorizonEnd.Record)
}

func TestExtractSummary_RetirementInThePastClampsToNow(t *testing.T) {
	profile := &domain.UserProfile{
		BirthDate:     time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		RetirementAge: 65,
	}
	summary := ExtractSummary(makeSeries(360), profile, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, summary.Retirement.MonthIndex)
}

func TestExtractSummary_EmptySeries(t *testing.T) {
	summary := ExtractSummary(nil, summaryProfile(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Equal(t, domain.MilestoneNow, summary.Now.Label)
	assert.Zero(t, summary.Now.Record)
	assert.Zero(t, summary.HorizonEnd.MonthIndex)
}

func TestExtractSummary_NilProfile(t *testing.T) {
	summary := ExtractSummary(makeSeries(360), nil, time.Time{})
	assert.Equal(t, 0, summary.Retirement.MonthIndex)
}
