package domain

import (
	"fmt"
	"strconv"
	"time"
)

type Session struct {
	CourseName string
	Hours      int
	// Date is nil when the session was logged without one.
	Date *time.Time
}

func NewSession(courseName string, hours int, date *time.Time) (Session, error) {
	if err := ValidateCourseName(courseName); err != nil {
		return Session{}, err
	}
	if err := ValidateHours(hours); err != nil {
		return Session{}, err
	}

	return Session{CourseName: courseName, Hours: hours, Date: date}, nil
}

func ValidateHours(hours int) error {
	if hours < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidHours, hours)
	}
	return nil
}

// ParseInteger accepts only the canonical decimal form: "+5" and "05" are
// rejected.
func ParseInteger(token string) (int, bool) {
	value, err := strconv.Atoi(token)
	if err != nil || strconv.Itoa(value) != token {
		return 0, false
	}
	return value, true
}

func (s Session) HasDate() bool {
	return s.Date != nil
}

func (s Session) OnDate(date time.Time) bool {
	if !s.HasDate() {
		return false
	}

	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
