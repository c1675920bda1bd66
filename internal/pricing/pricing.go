// Package pricing applies the markup policy layered on top of a house's
// base construction cost and formats prices for display. It is pure
// arithmetic over the estimator's outputs; it holds no state of its own.
package pricing

// Default markup rates.
const (
	DefaultTaxRate    = 0.19
	DefaultAdminRate  = 0.15
	DefaultProfitRate = 0.20
)

// Markup holds the three multiplicative rates compounded over a base cost:
// value-added tax, administration, and profit.
type Markup struct {
	TaxRate    float64
	AdminRate  float64
	ProfitRate float64
}

// DefaultMarkup returns the stock markup rates.
func DefaultMarkup() Markup {
	return Markup{
		TaxRate:    DefaultTaxRate,
		AdminRate:  DefaultAdminRate,
		ProfitRate: DefaultProfitRate,
	}
}

// Breakdown contains the intermediate subtotals of a markup calculation,
// kept separate so a quote can display each stage.
type Breakdown struct {
	Base       float64
	AfterTax   float64
	AfterAdmin float64
	Final      float64
}

// Result groups the markup output.
type Result struct {
	Breakdown Breakdown
	Final     float64
}

// Apply compounds the three rates over the base cost in sequence:
// base * (1+tax) * (1+admin) * (1+profit).
func (m Markup) Apply(baseCost float64) Result {
	afterTax := baseCost * (1 + m.TaxRate)
	afterAdmin := afterTax * (1 + m.AdminRate)
	final := afterAdmin * (1 + m.ProfitRate)

	return Result{
		Breakdown: Breakdown{
			Base:       baseCost,
			AfterTax:   afterTax,
			AfterAdmin: afterAdmin,
			Final:      final,
		},
		Final: final,
	}
}

// Final returns just the fully marked-up cost.
func (m Markup) Final(baseCost float64) float64 {
	return m.Apply(baseCost).Final
}
