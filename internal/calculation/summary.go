package calculation

import (
	"time"

	"github.com/propgo/property-forecast/internal/domain"
)

// Milestone month indices (0-based) into a forecast series.
const (
	milestoneNowIndex    = 0
	milestoneTenYears    = 119
	milestoneTwentyYears = 239
	milestoneHorizonEnd  = 359
)

// ExtractSummary selects the five fixed milestone records from a computed
// forecast series: now, 10 years, 20 years, the month nearest retirement,
// and the 30-year horizon. Records are selected, never recomputed, and every
// index clamps to the last available record when the series is shorter.
func ExtractSummary(series []domain.ForecastMonth, profile *domain.UserProfile, startDate time.Time) domain.ForecastSummary {
	retirementIndex := 0
	if profile != nil {
		retirementIndex = profile.MonthsToRetirement(startDate)
	}

	return domain.ForecastSummary{
		Now:         snapshotAt(series, domain.MilestoneNow, milestoneNowIndex),
		TenYears:    snapshotAt(series, domain.MilestoneTenYears, milestoneTenYears),
		TwentyYears: snapshotAt(series, domain.MilestoneTwentyYears, milestoneTwentyYears),
		Retirement:  snapshotAt(series, domain.MilestoneRetirement, retirementIndex),
		HorizonEnd:  snapshotAt(series, domain.MilestoneHorizonEnd, milestoneHorizonEnd),
	}
}

func snapshotAt(series []domain.ForecastMonth, label string, index int) domain.MilestoneSnapshot {
	if len(series) == 0 {
		return domain.MilestoneSnapshot{Label: label}
	}
	if index < 0 {
		index = 0
	}
	if index > len(series)-1 {
		index = len(series) - 1
	}
	return domain.MilestoneSnapshot{Label: label, MonthIndex: index, Record: series[index]}
}
