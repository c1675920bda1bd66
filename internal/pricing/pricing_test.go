package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestMarkup_Apply_DefaultRates(t *testing.T) {
	result := DefaultMarkup().Apply(1000000)

	nearlyEqual(t, "Base", result.Breakdown.Base, 1000000)
	nearlyEqual(t, "AfterTax", result.Breakdown.AfterTax, 1190000)
	nearlyEqual(t, "AfterAdmin", result.Breakdown.AfterAdmin, 1368500)
	nearlyEqual(t, "Final", result.Final, 1642200)
}

func TestMarkup_Apply_ZeroRatesAreIdentity(t *testing.T) {
	result := Markup{}.Apply(1965000)

	nearlyEqual(t, "AfterTax", result.Breakdown.AfterTax, 1965000)
	nearlyEqual(t, "AfterAdmin", result.Breakdown.AfterAdmin, 1965000)
	nearlyEqual(t, "Final", result.Final, 1965000)
}

func TestMarkup_Apply_ZeroBase(t *testing.T) {
	nearlyEqual(t, "Final", DefaultMarkup().Final(0), 0)
}

func TestMarkup_StagesCompound(t *testing.T) {
	m := Markup{TaxRate: 0.10, AdminRate: 0.10, ProfitRate: 0.10}
	result := m.Apply(1000)

	nearlyEqual(t, "AfterTax", result.Breakdown.AfterTax, 1100)
	nearlyEqual(t, "AfterAdmin", result.Breakdown.AfterAdmin, 1210)
	nearlyEqual(t, "Final", result.Final, 1331)
}

func TestFormatter_Price(t *testing.T) {
	cases := []struct {
		name      string
		formatter *Formatter
		value     float64
		want      string
	}{
		{"thousands grouping", NewFormatter("$", 0, true), 1965000, "$1,965,000"},
		{"no grouping", NewFormatter("$", 0, false), 1965000, "$1965000"},
		{"decimals", NewFormatter("$", 2, true), 98666.666, "$98,666.67"},
		{"small value", NewFormatter("$", 0, true), 950, "$950"},
		{"zero", NewFormatter("$", 0, true), 0, "$0"},
		{"negative", NewFormatter("$", 0, true), -1572000, "-$1,572,000"},
		{"negative small", NewFormatter("$", 0, true), -1234, "-$1,234"},
		{"negative no grouping", NewFormatter("$", 2, false), -1234.5, "-$1234.50"},
		{"other symbol", NewFormatter("€", 0, true), 42000, "€42,000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.formatter.Price(tc.value); got != tc.want {
				t.Errorf("Price(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatter_Units(t *testing.T) {
	f := NewFormatter("$", 0, true)

	if got := f.Area(37.8); got != "37.80 m²" {
		t.Errorf("Area = %q", got)
	}
	if got := f.Volume(32.4); got != "32.40 m³" {
		t.Errorf("Volume = %q", got)
	}
}
