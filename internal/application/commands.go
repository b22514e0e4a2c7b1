package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/arpahome/nustudy/internal/domain"
	"github.com/arpahome/nustudy/internal/ports"
	"github.com/dustin/go-humanize/english"
)

type Kind string

const (
	KindAddCourse            Kind = "add_course"
	KindAddSession           Kind = "add_session"
	KindListCourses          Kind = "list_courses"
	KindListSessions         Kind = "list_sessions"
	KindResetHours           Kind = "reset_hours"
	KindEditCourseName       Kind = "edit_course_name"
	KindEditSession          Kind = "edit_session"
	KindDeleteSessionsByDate Kind = "delete_sessions_by_date"
	KindDeleteCourse         Kind = "delete_course"
	KindDeleteSessionByIndex Kind = "delete_session_by_index"
	KindExit                 Kind = "exit"
	KindFilterByName         Kind = "filter_by_name"
)

// Mutating reports whether commands of this kind change the store and need
// to be persisted afterwards.
func (k Kind) Mutating() bool {
	switch k {
	case KindAddCourse, KindAddSession, KindResetHours, KindEditCourseName, KindEditSession,
		KindDeleteSessionsByDate, KindDeleteCourse, KindDeleteSessionByIndex:
		return true
	default:
		return false
	}
}

// Command is a validated request produced by ParseCommand. The set of
// implementations is closed to this package.
type Command interface {
	Kind() Kind
	Execute(store ports.CourseStore) (Result, error)
	command()
}

type Result struct {
	Kind     Kind
	Message  string
	Courses  []domain.Course
	Sessions []domain.Session
	Exit     bool
}

type AddCourseCommand struct {
	CourseName string
}

func NewAddCourseCommand(courseName string) (AddCourseCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return AddCourseCommand{}, err
	}
	return AddCourseCommand{CourseName: courseName}, nil
}

func (c AddCourseCommand) Kind() Kind { return KindAddCourse }

func (c AddCourseCommand) Execute(store ports.CourseStore) (Result, error) {
	if err := store.AddCourse(c.CourseName); err != nil {
		return Result{}, fmt.Errorf("add course: %w", err)
	}
	return Result{Kind: c.Kind(), Message: fmt.Sprintf("Added: %s", c.CourseName)}, nil
}

type AddSessionCommand struct {
	CourseName string
	Hours      int
	// Date is nil when no date was given.
	Date *time.Time
}

func NewAddSessionCommand(courseName string, hours int, date *time.Time) (AddSessionCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return AddSessionCommand{}, err
	}
	if err := domain.ValidateHours(hours); err != nil {
		return AddSessionCommand{}, invalidCommand(err)
	}
	return AddSessionCommand{CourseName: courseName, Hours: hours, Date: date}, nil
}

func (c AddSessionCommand) Kind() Kind { return KindAddSession }

func (c AddSessionCommand) Execute(store ports.CourseStore) (Result, error) {
	session := domain.Session{CourseName: c.CourseName, Hours: c.Hours, Date: c.Date}
	if err := store.AddSession(session); err != nil {
		return Result{}, fmt.Errorf("add session: %w", err)
	}

	message := fmt.Sprintf("Logged %s for %s", english.Plural(c.Hours, "hour", ""), c.CourseName)
	if session.HasDate() {
		message += " on " + domain.FormatDate(*c.Date)
	}
	return Result{Kind: c.Kind(), Message: message, Sessions: []domain.Session{session}}, nil
}

type ListCoursesCommand struct{}

func (c ListCoursesCommand) Kind() Kind { return KindListCourses }

func (c ListCoursesCommand) Execute(store ports.CourseStore) (Result, error) {
	courses := store.Courses()
	return Result{Kind: c.Kind(), Message: fmt.Sprintf("courses: %d", len(courses)), Courses: courses}, nil
}

type ListSessionsCommand struct {
	CourseName string
}

func NewListSessionsCommand(courseName string) (ListSessionsCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return ListSessionsCommand{}, err
	}
	return ListSessionsCommand{CourseName: courseName}, nil
}

func (c ListSessionsCommand) Kind() Kind { return KindListSessions }

func (c ListSessionsCommand) Execute(store ports.CourseStore) (Result, error) {
	sessions, err := store.Sessions(c.CourseName)
	if err != nil {
		return Result{}, fmt.Errorf("list sessions: %w", err)
	}
	return Result{Kind: c.Kind(), Message: c.CourseName, Sessions: sessions}, nil
}

type ResetHoursCommand struct {
	CourseName string
}

// NewResetHoursCommand receives the raw remainder of the input line and
// checks its shape itself.
func NewResetHoursCommand(arguments string) (ResetHoursCommand, error) {
	parts := strings.Fields(arguments)
	if len(parts) != 1 {
		return ResetHoursCommand{}, fmt.Errorf("%w: Invalid reset command format. Usage: reset <course>", domain.ErrInvalidCommand)
	}
	if err := validateCourseArg(parts[0]); err != nil {
		return ResetHoursCommand{}, err
	}
	return ResetHoursCommand{CourseName: parts[0]}, nil
}

func (c ResetHoursCommand) Kind() Kind { return KindResetHours }

func (c ResetHoursCommand) Execute(store ports.CourseStore) (Result, error) {
	if err := store.ResetHours(c.CourseName); err != nil {
		return Result{}, fmt.Errorf("reset hours: %w", err)
	}
	return Result{Kind: c.Kind(), Message: fmt.Sprintf("Reset all sessions of %s to 0 hours", c.CourseName)}, nil
}

type EditCourseNameCommand struct {
	CourseName string
	NewName    string
}

func NewEditCourseNameCommand(courseName, newName string) (EditCourseNameCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return EditCourseNameCommand{}, err
	}
	if err := validateCourseArg(newName); err != nil {
		return EditCourseNameCommand{}, err
	}
	return EditCourseNameCommand{CourseName: courseName, NewName: newName}, nil
}

func (c EditCourseNameCommand) Kind() Kind { return KindEditCourseName }

func (c EditCourseNameCommand) Execute(store ports.CourseStore) (Result, error) {
	if err := store.RenameCourse(c.CourseName, c.NewName); err != nil {
		return Result{}, fmt.Errorf("rename course: %w", err)
	}
	return Result{Kind: c.Kind(), Message: fmt.Sprintf("Renamed %s to %s", c.CourseName, c.NewName)}, nil
}

type EditSessionCommand struct {
	CourseName string
	Index      int
	Hours      int
}

func NewEditSessionCommand(courseName string, index, hours int) (EditSessionCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return EditSessionCommand{}, err
	}
	if err := validateIndex(index); err != nil {
		return EditSessionCommand{}, err
	}
	if err := domain.ValidateHours(hours); err != nil {
		return EditSessionCommand{}, invalidCommand(err)
	}
	return EditSessionCommand{CourseName: courseName, Index: index, Hours: hours}, nil
}

func (c EditSessionCommand) Kind() Kind { return KindEditSession }

func (c EditSessionCommand) Execute(store ports.CourseStore) (Result, error) {
	if err := store.SetSessionHours(c.CourseName, c.Index, c.Hours); err != nil {
		return Result{}, fmt.Errorf("edit session: %w", err)
	}
	return Result{
		Kind:    c.Kind(),
		Message: fmt.Sprintf("Session #%d of %s now has %s", c.Index, c.CourseName, english.Plural(c.Hours, "hour", "")),
	}, nil
}

type DeleteSessionsByDateCommand struct {
	Date time.Time
}

func (c DeleteSessionsByDateCommand) Kind() Kind { return KindDeleteSessionsByDate }

func (c DeleteSessionsByDateCommand) Execute(store ports.CourseStore) (Result, error) {
	removed := store.RemoveSessionsOn(c.Date)
	return Result{
		Kind:    c.Kind(),
		Message: fmt.Sprintf("Deleted %s on %s", english.Plural(removed, "session", ""), domain.FormatDate(c.Date)),
	}, nil
}

type DeleteCourseCommand struct {
	CourseName string
}

func NewDeleteCourseCommand(courseName string) (DeleteCourseCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return DeleteCourseCommand{}, err
	}
	return DeleteCourseCommand{CourseName: courseName}, nil
}

func (c DeleteCourseCommand) Kind() Kind { return KindDeleteCourse }

func (c DeleteCourseCommand) Execute(store ports.CourseStore) (Result, error) {
	removed, err := store.RemoveCourse(c.CourseName)
	if err != nil {
		return Result{}, fmt.Errorf("delete course: %w", err)
	}
	return Result{
		Kind:    c.Kind(),
		Message: fmt.Sprintf("Deleted %s and %s", removed.Name, english.Plural(len(removed.Sessions), "session", "")),
	}, nil
}

type DeleteSessionByIndexCommand struct {
	CourseName string
	Index      int
}

func NewDeleteSessionByIndexCommand(courseName string, index int) (DeleteSessionByIndexCommand, error) {
	if err := validateCourseArg(courseName); err != nil {
		return DeleteSessionByIndexCommand{}, err
	}
	if err := validateIndex(index); err != nil {
		return DeleteSessionByIndexCommand{}, err
	}
	return DeleteSessionByIndexCommand{CourseName: courseName, Index: index}, nil
}

func (c DeleteSessionByIndexCommand) Kind() Kind { return KindDeleteSessionByIndex }

func (c DeleteSessionByIndexCommand) Execute(store ports.CourseStore) (Result, error) {
	removed, err := store.RemoveSession(c.CourseName, c.Index)
	if err != nil {
		return Result{}, fmt.Errorf("delete session: %w", err)
	}
	return Result{
		Kind:     c.Kind(),
		Message:  fmt.Sprintf("Deleted session #%d of %s", c.Index, c.CourseName),
		Sessions: []domain.Session{removed},
	}, nil
}

type ExitCommand struct{}

func (c ExitCommand) Kind() Kind { return KindExit }

func (c ExitCommand) Execute(ports.CourseStore) (Result, error) {
	return Result{Kind: c.Kind(), Message: "Bye!", Exit: true}, nil
}

type FilterByNameCommand struct {
	Keyword string
}

func (c FilterByNameCommand) Kind() Kind { return KindFilterByName }

// Execute keeps the courses whose name contains the keyword, ignoring case.
func (c FilterByNameCommand) Execute(store ports.CourseStore) (Result, error) {
	keyword := strings.ToLower(c.Keyword)

	matches := make([]domain.Course, 0)
	for _, course := range store.Courses() {
		if strings.Contains(strings.ToLower(course.Name), keyword) {
			matches = append(matches, course)
		}
	}

	return Result{
		Kind:    c.Kind(),
		Message: fmt.Sprintf("%s matching %q", english.Plural(len(matches), "course", ""), c.Keyword),
		Courses: matches,
	}, nil
}

func (AddCourseCommand) command()            {}
func (AddSessionCommand) command()           {}
func (ListCoursesCommand) command()          {}
func (ListSessionsCommand) command()         {}
func (ResetHoursCommand) command()           {}
func (EditCourseNameCommand) command()       {}
func (EditSessionCommand) command()          {}
func (DeleteSessionsByDateCommand) command() {}
func (DeleteCourseCommand) command()         {}
func (DeleteSessionByIndexCommand) command() {}
func (ExitCommand) command()                 {}
func (FilterByNameCommand) command()         {}

func validateCourseArg(name string) error {
	if err := domain.ValidateCourseName(name); err != nil {
		return invalidCommand(err)
	}
	return nil
}

func validateIndex(index int) error {
	if index < 1 {
		return fmt.Errorf("%w: session index must be 1 or greater, got %d", domain.ErrInvalidCommand, index)
	}
	return nil
}

func invalidCommand(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidCommand, err)
}
