package output

import (
	"fmt"
	"strings"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a forecast result into a byte stream for one output
// format.
type Formatter interface {
	Name() string
	Format(result *domain.ForecastResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the formatter with the given name
// (case-insensitive), or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if strings.EqualFold(f.Name(), name) {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered format names.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// FormatCurrency renders integer cents as a dollar amount with thousands
// separators, e.g. 123456789 -> "$1,234,567.89".
func FormatCurrency(cents int64) string {
	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), parts[1])
}

// FormatPercent renders a rate fraction as a percentage, e.g. 0.06 -> "6.00%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
