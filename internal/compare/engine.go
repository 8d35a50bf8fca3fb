package compare

import (
	"fmt"

	"github.com/propgo/property-forecast/internal/calculation"
	"github.com/propgo/property-forecast/internal/domain"
	"github.com/propgo/property-forecast/internal/transform"
)

// MilestoneDelta captures the gap between the base and stressed projection
// at one milestone. Amounts are integer cents; negative deltas mean the
// stressed case is worse.
type MilestoneDelta struct {
	Label              string `json:"label"`
	MonthIndex         int    `json:"monthIndex"`
	BaseNetWorth       int64  `json:"baseNetWorth"`
	StressedNetWorth   int64  `json:"stressedNetWorth"`
	NetWorthDelta      int64  `json:"netWorthDelta"`
	BaseNetWorthPV     int64  `json:"baseNetWorthPv"`
	StressedNetWorthPV int64  `json:"stressedNetWorthPv"`
	NetWorthPVDelta    int64  `json:"netWorthPvDelta"`
	BaseCashBuffer     int64  `json:"baseCashBuffer"`
	StressedCashBuffer int64  `json:"stressedCashBuffer"`
	CashBufferDelta    int64  `json:"cashBufferDelta"`
}

// StressComparison is a base forecast, its stressed variant, and the
// milestone-by-milestone deltas between them.
type StressComparison struct {
	Base      *domain.ForecastResult `json:"base"`
	Stressed  *domain.ForecastResult `json:"stressed"`
	Deltas    []MilestoneDelta       `json:"deltas"`
}

// RunStressComparison projects the scenario as given and under its own
// stress parameters, then diffs the two at each milestone. The base and
// stressed runs share no state and the input scenario is never modified.
func RunStressComparison(engine *calculation.ForecastEngine, scenario *domain.Scenario) (*StressComparison, error) {
	if engine == nil {
		engine = calculation.NewForecastEngine()
	}

	base, err := engine.RunScenario(scenario)
	if err != nil {
		return nil, fmt.Errorf("base projection failed: %w", err)
	}

	stressedScenario, err := transform.StressVariant(scenario)
	if err != nil {
		return nil, fmt.Errorf("stress transform failed: %w", err)
	}

	stressed, err := engine.RunScenario(stressedScenario)
	if err != nil {
		return nil, fmt.Errorf("stressed projection failed: %w", err)
	}

	comparison := &StressComparison{Base: base, Stressed: stressed}

	baseMilestones := base.Summary.Milestones()
	stressedMilestones := stressed.Summary.Milestones()
	for i := range baseMilestones {
		b := baseMilestones[i]
		s := stressedMilestones[i]
		comparison.Deltas = append(comparison.Deltas, MilestoneDelta{
			Label:              b.Label,
			MonthIndex:         b.MonthIndex,
			BaseNetWorth:       b.Record.NetWorth,
			StressedNetWorth:   s.Record.NetWorth,
			NetWorthDelta:      s.Record.NetWorth - b.Record.NetWorth,
			BaseNetWorthPV:     b.Record.NetWorthPV,
			StressedNetWorthPV: s.Record.NetWorthPV,
			NetWorthPVDelta:    s.Record.NetWorthPV - b.Record.NetWorthPV,
			BaseCashBuffer:     b.Record.CashBuffer,
			StressedCashBuffer: s.Record.CashBuffer,
			CashBufferDelta:    s.Record.CashBuffer - b.Record.CashBuffer,
		})
	}

	return comparison, nil
}
