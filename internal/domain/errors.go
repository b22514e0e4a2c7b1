package domain

import "errors"

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrInvalidDate     = errors.New("invalid date")
	ErrMalformedRecord = errors.New("malformed storage record")
	ErrInvalidCourse   = errors.New("invalid course name")
	ErrInvalidHours    = errors.New("invalid hours")

	// ErrDomainState is wrapped by every error raised while executing a command
	// against the tracker, so callers can tell them apart from parse failures.
	ErrDomainState     = errors.New("domain state")
	ErrCourseNotFound  = stateError("course not found")
	ErrDuplicateCourse = stateError("course already exists")
	ErrSessionNotFound = stateError("session not found")
)

type domainStateError struct {
	msg string
}

func stateError(msg string) error {
	return &domainStateError{msg: msg}
}

func (e *domainStateError) Error() string {
	return e.msg
}

func (e *domainStateError) Unwrap() error {
	return ErrDomainState
}
