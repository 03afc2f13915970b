// Package utils provides shared rounding and formatting helpers.
package utils

import (
	"fmt"
	"math"
)

// Decimal precision used across the ledger.
const (
	MoneyDecimals  = 2
	SharesDecimals = 4
)

// Round rounds value to the given number of decimal places using
// scaled-integer rounding. Scaling to an integer before rounding keeps
// repeated money arithmetic from accumulating binary float drift.
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}

// RoundMoney rounds a currency amount to 2 decimal places.
func RoundMoney(value float64) float64 {
	return Round(value, MoneyDecimals)
}

// RoundShares rounds a share count to 4 decimal places.
func RoundShares(value float64) float64 {
	return Round(value, SharesDecimals)
}

// FormatEuro formats an amount as a euro string, e.g. "€9,900.00".
func FormatEuro(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	intPart := str[:len(str)-3]
	decPart := str[len(str)-2:]

	result := "€" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "," + result
		s = s[:len(s)-3]
	}
	return s + "," + result
}

// FormatPercent formats a percentage with an explicit sign, e.g. "+4.20%".
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatShares formats a share count, trimming to 4 decimal places.
func FormatShares(value float64) string {
	return fmt.Sprintf("%.4f", RoundShares(value))
}
