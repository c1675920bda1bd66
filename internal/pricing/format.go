package pricing

import (
	"fmt"
	"strings"
)

// Formatter renders raw numeric costs as display strings. Formatting is a
// presentation concern; the model layer only produces raw numbers.
type Formatter struct {
	CurrencySymbol     string
	DecimalPlaces      int
	ThousandsSeparator bool
}

// NewFormatter creates a formatter with the given display options.
func NewFormatter(symbol string, decimals int, thousands bool) *Formatter {
	if decimals < 0 {
		decimals = 0
	}
	return &Formatter{
		CurrencySymbol:     symbol,
		DecimalPlaces:      decimals,
		ThousandsSeparator: thousands,
	}
}

// Price renders a price, e.g. "$1,965,000" with zero decimals and
// thousands separators. Negative values carry the sign before the
// currency symbol, as in "-$1,234".
func (f *Formatter) Price(v float64) string {
	s := fmt.Sprintf("%.*f", f.DecimalPlaces, v)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	if f.ThousandsSeparator {
		s = groupThousands(s)
	}
	return sign + f.CurrencySymbol + s
}

// Area renders an area with two decimals and the m² unit.
func (f *Formatter) Area(v float64) string {
	return fmt.Sprintf("%.2f m²", v)
}

// Volume renders a volume with two decimals and the m³ unit.
func (f *Formatter) Volume(v float64) string {
	return fmt.Sprintf("%.2f m³", v)
}

// groupThousands inserts comma separators into the integer part of a
// plain decimal string. A leading minus sign is preserved.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
