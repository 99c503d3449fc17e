package donations

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var (
	ErrInvalidAmount     = fmt.Errorf("amount must be a number with at most two decimals")
	ErrAmountNotPositive = fmt.Errorf("amount must be greater than zero")
)

// ParseAmount reads a rupee amount typed by a donor. Thousands separators are
// ignored.
func ParseAmount(value string, max float64) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if !amountPattern.MatchString(value) {
		return 0, ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, ErrAmountNotPositive
	}
	if max > 0 && amount > max {
		return 0, fmt.Errorf("amount must not exceed %s", FormatRupees(max))
	}
	return amount, nil
}

// FormatRupees formats an amount with the rupee sign and two decimals.
func FormatRupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', 2, 64)
}
