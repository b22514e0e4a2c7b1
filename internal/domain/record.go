package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldSeparator = "|"
	courseTag      = "C"
	sessionTag     = "S"
)

// StorageString encodes the course as a single C| record. Sessions are
// encoded separately, see Session.StorageString.
func (c Course) StorageString() string {
	return strings.Join([]string{courseTag, c.Name}, fieldSeparator)
}

// StorageString encodes the session as S|<course>|<hours>[|<date>].
func (s Session) StorageString() string {
	fields := []string{sessionTag, s.CourseName, strconv.Itoa(s.Hours)}
	if s.HasDate() {
		fields = append(fields, FormatDate(*s.Date))
	}
	return strings.Join(fields, fieldSeparator)
}

func ParseCourse(line string) (Course, error) {
	fields := strings.Split(line, fieldSeparator)
	if fields[0] != courseTag {
		return Course{}, fmt.Errorf("%w: %q is not a course record", ErrMalformedRecord, line)
	}
	if len(fields) != 2 {
		return Course{}, fmt.Errorf("%w: course record %q has %d fields, want 2", ErrMalformedRecord, line, len(fields))
	}
	if err := ValidateCourseName(fields[1]); err != nil {
		return Course{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return Course{Name: fields[1]}, nil
}

func ParseSession(line string) (Session, error) {
	fields := strings.Split(line, fieldSeparator)
	if fields[0] != sessionTag {
		return Session{}, fmt.Errorf("%w: %q is not a session record", ErrMalformedRecord, line)
	}
	if len(fields) != 3 && len(fields) != 4 {
		return Session{}, fmt.Errorf("%w: session record %q has %d fields, want 3 or 4", ErrMalformedRecord, line, len(fields))
	}

	hours, ok := ParseInteger(fields[2])
	if !ok {
		return Session{}, fmt.Errorf("%w: hours %q is not an integer", ErrMalformedRecord, fields[2])
	}

	session := Session{CourseName: fields[1], Hours: hours}
	if len(fields) == 4 {
		date, err := ParseDate(fields[3])
		if err != nil {
			return Session{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		session.Date = &date
	}

	if _, err := NewSession(session.CourseName, session.Hours, session.Date); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return session, nil
}

// ParseRecords rebuilds the course list from storage lines. Session records
// must follow the course record they belong to. Blank lines are skipped; any
// other bad line aborts the whole parse.
func ParseRecords(lines []string) ([]Course, error) {
	courses := make([]Course, 0)
	positions := make(map[string]int)

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		tag, _, _ := strings.Cut(line, fieldSeparator)
		switch tag {
		case courseTag:
			course, err := ParseCourse(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if _, ok := positions[course.Name]; ok {
				return nil, fmt.Errorf("line %d: %w: duplicate course %q", i+1, ErrMalformedRecord, course.Name)
			}
			positions[course.Name] = len(courses)
			courses = append(courses, course)
		case sessionTag:
			session, err := ParseSession(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			pos, ok := positions[session.CourseName]
			if !ok {
				return nil, fmt.Errorf("line %d: %w: session references unknown course %q", i+1, ErrMalformedRecord, session.CourseName)
			}
			courses[pos].Sessions = append(courses[pos].Sessions, session)
		default:
			return nil, fmt.Errorf("line %d: %w: unknown record tag %q", i+1, ErrMalformedRecord, tag)
		}
	}

	return courses, nil
}

// EncodeRecords is the inverse of ParseRecords: each course record is
// followed by its session records.
func EncodeRecords(courses []Course) []string {
	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		lines = append(lines, course.StorageString())
		for _, session := range course.Sessions {
			lines = append(lines, session.StorageString())
		}
	}
	return lines
}
