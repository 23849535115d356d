package domain

import "fmt"

// Money is a monetary amount in the currency's minor units (e.g. cents).
// Integer arithmetic keeps the stored reservation total and the paid amount
// exactly comparable.
type Money int64

// Times returns the amount multiplied by a whole count (e.g. nights).
func (m Money) Times(n int) Money {
	return m * Money(n)
}

func (m Money) String() string {
	units := m / 100
	cents := m % 100
	if m < 0 {
		if units == 0 {
			return fmt.Sprintf("-0.%02d", -cents)
		}
		cents = -cents
	}
	return fmt.Sprintf("%d.%02d", units, cents)
}
