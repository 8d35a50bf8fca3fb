package compare

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/propgo/property-forecast/internal/output"
)

// FormatTable renders a stress comparison as a console table.
func FormatTable(sc *StressComparison) string {
	var sb strings.Builder

	sb.WriteString("STRESS TEST COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Base scenario:     %s\n", sc.Base.ScenarioName))
	sb.WriteString(fmt.Sprintf("Stressed scenario: %s\n\n", sc.Stressed.ScenarioName))

	sb.WriteString(fmt.Sprintf("%-12s %8s %18s %18s %18s\n",
		"Milestone", "Month", "Base Net Worth", "Stressed", "Delta"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, d := range sc.Deltas {
		sb.WriteString(fmt.Sprintf("%-12s %8d %18s %18s %18s\n",
			d.Label, d.MonthIndex+1,
			output.FormatCurrency(d.BaseNetWorth),
			output.FormatCurrency(d.StressedNetWorth),
			output.FormatCurrency(d.NetWorthDelta)))
	}

	sb.WriteString(strings.Repeat("-", 96) + "\n")

	if len(sc.Deltas) == 0 {
		return sb.String()
	}

	sb.WriteString("\nPRESENT VALUE AND CASH BUFFER AT HORIZON\n")

	last := sc.Deltas[len(sc.Deltas)-1]
	sb.WriteString(fmt.Sprintf("Net worth (PV):  base %s, stressed %s (delta %s)\n",
		output.FormatCurrency(last.BaseNetWorthPV),
		output.FormatCurrency(last.StressedNetWorthPV),
		output.FormatCurrency(last.NetWorthPVDelta)))
	sb.WriteString(fmt.Sprintf("Cash buffer:     base %s, stressed %s (delta %s)\n",
		output.FormatCurrency(last.BaseCashBuffer),
		output.FormatCurrency(last.StressedCashBuffer),
		output.FormatCurrency(last.CashBufferDelta)))

	return sb.String()
}

// FormatJSON renders a stress comparison as indented JSON, with the full
// monthly series elided to keep the payload at milestone granularity.
func FormatJSON(sc *StressComparison) ([]byte, error) {
	slim := struct {
		BaseScenario     string           `json:"baseScenario"`
		StressedScenario string           `json:"stressedScenario"`
		Deltas           []MilestoneDelta `json:"deltas"`
	}{
		BaseScenario:     sc.Base.ScenarioName,
		StressedScenario: sc.Stressed.ScenarioName,
		Deltas:           sc.Deltas,
	}
	return json.MarshalIndent(slim, "", "  ")
}
