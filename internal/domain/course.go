package domain

import (
	"fmt"
	"strings"
	"unicode"
)

type Course struct {
	Name     string
	Sessions []Session
}

// ValidateCourseName rejects names that would not survive a round trip
// through the command grammar or the storage format.
func ValidateCourseName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCourse)
	}
	if strings.Contains(name, fieldSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidCourse, name, fieldSeparator)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidCourse, name)
	}

	return nil
}

func (c Course) TotalHours() int {
	total := 0
	for _, session := range c.Sessions {
		total += session.Hours
	}
	return total
}

func (c Course) clone() Course {
	if c.Sessions == nil {
		return c
	}
	sessions := make([]Session, len(c.Sessions))
	copy(sessions, c.Sessions)
	c.Sessions = sessions
	return c
}
