// Package money holds prices in paisa (1/100 of a Pakistani rupee).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Amount int64

var hundred = decimal.NewFromInt(100)

// FromRupees converts a rupee value, rounding half away from zero to the paisa.
func FromRupees(v float64) Amount {
	return FromDecimal(decimal.NewFromFloat(v))
}

func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Mul(hundred).Round(0).IntPart())
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) Rupees() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

func (a Amount) Times(qty int) Amount {
	return a * Amount(qty)
}

// Percent returns pct percent of a, rounded to the paisa.
func (a Amount) Percent(pct decimal.Decimal) Amount {
	return Amount(decimal.NewFromInt(int64(a)).Mul(pct).Div(hundred).Round(0).IntPart())
}

func (a Amount) String() string {
	return Format(a)
}

// Format renders a as "Rs 1,234.00".
func Format(a Amount) string {
	return "Rs " + Plain(a)
}

// Plain renders a as "1,234.00" with thousands separators.
func Plain(a Amount) string {
	neg := a < 0
	if neg {
		a = -a
	}
	s := a.Decimal().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// MarshalJSON writes the rupee value as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = FromDecimal(d)
	return nil
}
