// Package money provides the integer currency amount shared by the
// catalog demonstrations.
package money

import "fmt"

// Cents is an amount of money in cents. Integer arithmetic keeps the
// demonstration transcripts exact.
type Cents int64

// Dollars converts a whole dollar amount to Cents.
func Dollars(d int64) Cents {
	return Cents(d * 100)
}

// String formats the amount as "$12.34" or "-$0.50".
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// Percent returns p percent of c, rounded down.
func (c Cents) Percent(p int64) Cents {
	return c * Cents(p) / 100
}
