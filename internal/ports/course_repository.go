package ports

import (
	"context"

	"github.com/arpahome/nustudy/internal/domain"
)

type CourseRepository interface {
	Load(ctx context.Context) ([]domain.Course, error)
	Save(ctx context.Context, courses []domain.Course) error
}
