package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduplatform/courses-api/internal/core/domain"
	"github.com/eduplatform/courses-api/internal/core/ports"
)

const minTitleLength = 5

// CourseService implements course creation and retrieval.
type CourseService struct {
	repo   ports.CourseRepository
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// Create validates the title and persists a new course, returning its id.
func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (string, error) {
	title := strings.TrimSpace(input.Title)
	if len(title) < minTitleLength {
		return "", domain.ErrInvalidTitle
	}

	id, err := s.repo.Create(ctx, &domain.Course{
		Title:       title,
		Description: input.Description,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("failed to create course")
		return "", err
	}

	s.logger.Info().Str("course_id", id).Str("title", title).Msg("course created")
	return id, nil
}

// GetByID fetches a single course. A malformed id is rejected before the
// repository is touched.
func (s *CourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidCourseID
	}
	return s.repo.FindByID(ctx, id)
}

// List returns courses matching the optional title search, each annotated
// with its enrollment count.
func (s *CourseService) List(ctx context.Context, search string) (*ports.CourseList, error) {
	courses, total, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error().Err(err).Str("search", search).Msg("failed to list courses")
		return nil, err
	}
	return &ports.CourseList{Total: total, Courses: courses}, nil
}
