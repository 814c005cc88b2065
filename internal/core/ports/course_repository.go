package ports

import (
	"context"

	"github.com/eduplatform/courses-api/internal/core/domain"
)

// CourseRepository defines the interface for course persistence.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns the courses matching the optional title search together
	// with their enrollment counts, plus the total number of matches.
	List(ctx context.Context, search string) ([]domain.CourseWithEnrollments, int64, error)
}
