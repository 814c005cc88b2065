package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduplatform/courses-api/internal/core/domain"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course and returns its generated id.
func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (string, error) {
	var id string
	row := r.pool.QueryRow(ctx, `
		INSERT INTO courses (title, description)
		VALUES ($1, $2)
		RETURNING id
	`, course.Title, course.Description)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}

	return id, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	course := &domain.Course{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description
		FROM courses
		WHERE id = $1
	`, id)

	if err := row.Scan(&course.ID, &course.Title, &course.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	return course, nil
}

// List returns the courses whose title contains search (case-insensitive;
// empty search matches everything), each with its enrollment count, plus the
// total number of matches. Ordered by title so a fixed data set always
// produces the same page.
func (r *CourseRepository) List(ctx context.Context, search string) ([]domain.CourseWithEnrollments, int64, error) {
	pattern := "%" + search + "%"

	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM courses
		WHERE title ILIKE $1
	`, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.title, COUNT(e.id) AS enrollments
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.title ILIKE $1
		GROUP BY c.id, c.title
		ORDER BY c.title
	`, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.CourseWithEnrollments
	for rows.Next() {
		var c domain.CourseWithEnrollments
		if err := rows.Scan(&c.ID, &c.Title, &c.Enrollments); err != nil {
			return nil, 0, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}

	return courses, total, nil
}
