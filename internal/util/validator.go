package util

import (
	"fmt"
	"time"
)

// maxAmount caps a single transaction; anything this large is a typo.
const maxAmount = 10000000

// ValidateAmount checks that a monetary amount is positive and sane.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if amount >= maxAmount {
		return fmt.Errorf("amount too large")
	}
	return nil
}

// ParseDate parses the date formats clients send: RFC3339, a bare
// datetime, or a plain YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", s)
}
