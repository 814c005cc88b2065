package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createCourseRequest struct {
	Title       string  `json:"title"       validate:"required,min=5"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type createCourseResponse struct {
	CourseID string `json:"courseId"`
}

type courseView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type getCourseResponse struct {
	Course courseView `json:"course"`
}

type courseListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Enrollments int64  `json:"enrollments"`
}

type listCoursesResponse struct {
	Total   int64            `json:"total"`
	Courses []courseListItem `json:"courses"`
}
