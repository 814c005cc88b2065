package ports

import (
	"context"

	"github.com/eduplatform/courses-api/internal/core/domain"
)

// CreateCourseInput carries the data needed to create a new course.
type CreateCourseInput struct {
	Title       string
	Description *string
}

// CourseList is the result of a list query: the matched page and the total
// number of matches.
type CourseList struct {
	Total   int64
	Courses []domain.CourseWithEnrollments
}

// CourseService defines use-case operations for courses.
type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, search string) (*CourseList, error)
}
