package shared

import (
	"fmt"
	"strings"
	"time"
)

// ParsePeriod accepts a payroll month as YYYY-MM. An empty value is
// allowed; the import layer substitutes the current month.
func ParsePeriod(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01", value); err != nil {
		return "", fmt.Errorf("period must be formatted as YYYY-MM")
	}
	return value, nil
}
