package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arpahome/nustudy/internal/domain"
	"github.com/arpahome/nustudy/internal/ports"
)

var ErrNotLoaded = errors.New("courses not loaded")

var _ ports.CourseStore = (*domain.Tracker)(nil)

// Service loads the course collection once, runs input lines against it and
// writes it back after every command that changed it.
type Service struct {
	repo    ports.CourseRepository
	logger  *slog.Logger
	tracker *domain.Tracker
}

func NewService(repo ports.CourseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Load(ctx context.Context) error {
	courses, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load courses: %w", err)
	}

	s.tracker = domain.NewTracker(courses...)
	s.logger.Debug("courses loaded", "courses", len(courses))
	return nil
}

func (s *Service) Run(ctx context.Context, input string) (Result, error) {
	if s.tracker == nil {
		return Result{}, ErrNotLoaded
	}

	command, err := ParseCommand(input)
	if err != nil {
		return Result{}, err
	}

	return s.Execute(ctx, command)
}

func (s *Service) Execute(ctx context.Context, command Command) (Result, error) {
	if s.tracker == nil {
		return Result{}, ErrNotLoaded
	}

	kind := command.Kind()
	var snapshot []domain.Course
	if kind.Mutating() {
		snapshot = s.tracker.Courses()
	}

	result, err := command.Execute(s.tracker)
	if err != nil {
		s.logger.Debug("command failed", "kind", kind, "error", err)
		return Result{}, err
	}
	s.logger.Debug("command executed", "kind", kind)

	if !kind.Mutating() {
		return result, nil
	}

	if err := s.repo.Save(ctx, s.tracker.Courses()); err != nil {
		s.tracker = domain.NewTracker(snapshot...)
		return Result{}, fmt.Errorf("save courses: %w", err)
	}

	return result, nil
}

func (s *Service) Courses() []domain.Course {
	if s.tracker == nil {
		return nil
	}
	return s.tracker.Courses()
}
