package domain

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted date shape, e.g. 2024-03-01.
const DateLayout = "2006-01-02"

// IsValidDate reports whether token is a zero-padded YYYY-MM-DD calendar date.
func IsValidDate(token string) bool {
	_, err := ParseDate(token)
	return err == nil
}

func ParseDate(token string) (time.Time, error) {
	if !hasDateShape(token) {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, token)
	}

	parsed, err := time.Parse(DateLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, token)
	}

	return parsed, nil
}

func FormatDate(value time.Time) string {
	return value.Format(DateLayout)
}

func hasDateShape(token string) bool {
	if len(token) != len(DateLayout) {
		return false
	}

	for i := 0; i < len(token); i++ {
		switch i {
		case 4, 7:
			if token[i] != '-' {
				return false
			}
		default:
			if token[i] < '0' || token[i] > '9' {
				return false
			}
		}
	}

	return true
}
