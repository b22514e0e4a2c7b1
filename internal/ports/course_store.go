package ports

import (
	"time"

	"github.com/arpahome/nustudy/internal/domain"
)

// CourseStore is the in-memory collection commands execute against.
type CourseStore interface {
	Course(name string) (domain.Course, error)
	Courses() []domain.Course
	Sessions(courseName string) ([]domain.Session, error)
	AddCourse(name string) error
	RemoveCourse(name string) (domain.Course, error)
	RenameCourse(oldName, newName string) error
	AddSession(session domain.Session) error
	RemoveSession(courseName string, index int) (domain.Session, error)
	RemoveSessionsOn(date time.Time) int
	SetSessionHours(courseName string, index, hours int) error
	ResetHours(courseName string) error
}
