// Package money does currency arithmetic in decimal so that stored amounts
// never pick up binary float drift.
package money

import "github.com/shopspring/decimal"

const places = 2

func round(d decimal.Decimal) float64 {
	return d.Round(places).InexactFloat64()
}

// Balance is the amount still owed on a sale.
func Balance(total, advance float64) float64 {
	return round(decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(advance)))
}

// NetSalary is basic + allowances - deductions.
func NetSalary(basic, allowances, deductions float64) float64 {
	return round(decimal.NewFromFloat(basic).
		Add(decimal.NewFromFloat(allowances)).
		Sub(decimal.NewFromFloat(deductions)))
}

func Equal(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(places).Equal(decimal.NewFromFloat(b).Round(places))
}

func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return round(total)
}
