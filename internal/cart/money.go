package cart

import "fmt"

// FormatBRL renders an amount in cents as the shop displays prices:
// "R$ 120,00", two decimal places with a comma separator.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}
