package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrInvalidTitle = errors.New("title must be at least 5 characters long")
var ErrInvalidCourseID = errors.New("invalid course id")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// Course is a catalog entry. Description is a pointer so an absent
// description serializes as JSON null, not as an empty string.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// Enrollment links one user to one course. Rows cascade-delete with
// either parent, so an enrollment never outlives its user or course.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseWithEnrollments is a course annotated with its live enrollment count,
// as returned by the list query.
type CourseWithEnrollments struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Enrollments int64  `json:"enrollments"`
}
