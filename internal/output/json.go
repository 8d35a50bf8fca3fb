package output

import (
	"encoding/json"

	"github.com/propgo/property-forecast/internal/domain"
)

// JSONFormatter marshals the complete forecast result, series and summary
// included.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.ForecastResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
