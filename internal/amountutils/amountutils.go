// Package amountutils provides common decimal amount operations used
// throughout the application.
package amountutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string representation of a UBL amount into a decimal
// value. Empty strings parse to zero, since UBL emitters leave optional
// amount elements out rather than writing 0.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParseOptionalAmount parses an amount that may legitimately be absent.
// It returns nil for empty input and a pointer to the parsed value otherwise.
func ParseOptionalAmount(amountStr string) (*decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return nil, nil
	}
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// TruncateToInt coerces a decimal quantity to an integer by truncation.
// 2.9 becomes 2, -2.9 becomes -2; no rounding is applied.
func TruncateToInt(quantity decimal.Decimal) int64 {
	return quantity.IntPart()
}

// FormatAmount formats a decimal amount with two decimal places, the
// display convention for monetary values in the converted records.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
