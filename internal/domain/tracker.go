package domain

import (
	"fmt"
	"time"
)

// Tracker is the in-memory course and session collection the commands run
// against. It is not safe for concurrent use.
type Tracker struct {
	courses []Course
}

func NewTracker(courses ...Course) *Tracker {
	t := &Tracker{courses: make([]Course, 0, len(courses))}
	for _, course := range courses {
		t.courses = append(t.courses, course.clone())
	}
	return t
}

func (t *Tracker) Course(name string) (Course, error) {
	i, err := t.indexOf(name)
	if err != nil {
		return Course{}, err
	}
	return t.courses[i].clone(), nil
}

func (t *Tracker) Courses() []Course {
	courses := make([]Course, 0, len(t.courses))
	for _, course := range t.courses {
		courses = append(courses, course.clone())
	}
	return courses
}

func (t *Tracker) Sessions(courseName string) ([]Session, error) {
	course, err := t.Course(courseName)
	if err != nil {
		return nil, err
	}
	return course.Sessions, nil
}

func (t *Tracker) AddCourse(name string) error {
	if err := ValidateCourseName(name); err != nil {
		return err
	}
	if _, err := t.indexOf(name); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, name)
	}

	t.courses = append(t.courses, Course{Name: name})
	return nil
}

func (t *Tracker) RemoveCourse(name string) (Course, error) {
	i, err := t.indexOf(name)
	if err != nil {
		return Course{}, err
	}

	removed := t.courses[i]
	t.courses = append(t.courses[:i], t.courses[i+1:]...)
	return removed, nil
}

func (t *Tracker) RenameCourse(oldName, newName string) error {
	i, err := t.indexOf(oldName)
	if err != nil {
		return err
	}
	if err := ValidateCourseName(newName); err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if _, err := t.indexOf(newName); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, newName)
	}

	t.courses[i].Name = newName
	for j := range t.courses[i].Sessions {
		t.courses[i].Sessions[j].CourseName = newName
	}
	return nil
}

func (t *Tracker) AddSession(session Session) error {
	i, err := t.indexOf(session.CourseName)
	if err != nil {
		return err
	}
	if err := ValidateHours(session.Hours); err != nil {
		return err
	}

	t.courses[i].Sessions = append(t.courses[i].Sessions, session)
	return nil
}

// RemoveSession deletes the session at the 1-based index within a course.
func (t *Tracker) RemoveSession(courseName string, index int) (Session, error) {
	i, j, err := t.sessionAt(courseName, index)
	if err != nil {
		return Session{}, err
	}

	sessions := t.courses[i].Sessions
	removed := sessions[j]
	t.courses[i].Sessions = append(sessions[:j], sessions[j+1:]...)
	return removed, nil
}

// RemoveSessionsOn deletes every dated session on the given day across all
// courses and returns how many were removed.
func (t *Tracker) RemoveSessionsOn(date time.Time) int {
	removed := 0
	for i := range t.courses {
		kept := t.courses[i].Sessions[:0]
		for _, session := range t.courses[i].Sessions {
			if session.OnDate(date) {
				removed++
				continue
			}
			kept = append(kept, session)
		}
		t.courses[i].Sessions = kept
	}
	return removed
}

func (t *Tracker) SetSessionHours(courseName string, index, hours int) error {
	if err := ValidateHours(hours); err != nil {
		return err
	}

	i, j, err := t.sessionAt(courseName, index)
	if err != nil {
		return err
	}

	t.courses[i].Sessions[j].Hours = hours
	return nil
}

func (t *Tracker) ResetHours(courseName string) error {
	i, err := t.indexOf(courseName)
	if err != nil {
		return err
	}

	for j := range t.courses[i].Sessions {
		t.courses[i].Sessions[j].Hours = 0
	}
	return nil
}

func (t *Tracker) StorageLines() []string {
	return EncodeRecords(t.courses)
}

func (t *Tracker) indexOf(name string) (int, error) {
	for i, course := range t.courses {
		if course.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrCourseNotFound, name)
}

func (t *Tracker) sessionAt(courseName string, index int) (int, int, error) {
	i, err := t.indexOf(courseName)
	if err != nil {
		return -1, -1, err
	}

	count := len(t.courses[i].Sessions)
	if index < 1 || index > count {
		return -1, -1, fmt.Errorf("%w: %s has no session #%d (sessions: %d)", ErrSessionNotFound, courseName, index, count)
	}
	return i, index - 1, nil
}
