package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/courses-api/internal/api/metrics"
	"github.com/eduplatform/courses-api/internal/core/domain"
	"github.com/eduplatform/courses-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /courses.
//
// @Summary      Create a new course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  createCourseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTitle) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create course"})
	}

	metrics.CoursesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createCourseResponse{CourseID: id})
}

// Get handles GET /courses/:id.
//
// @Summary      Get course by ID
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID (UUID)"
// @Success      200  {object}  getCourseResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	course, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCourseID):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrCourseNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "course not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, getCourseResponse{
		Course: courseView{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
		},
	})
}

// List handles GET /courses.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring filter on title"
// @Success      200     {object}  listCoursesResponse
// @Failure      401     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	search := c.QueryParam("search")
	filtered := "no"
	if search != "" {
		filtered = "yes"
	}
	metrics.ListRequestsTotal.WithLabelValues(filtered).Inc()

	list, err := h.service.List(c.Request().Context(), search)
	if err != nil {
		return err
	}

	items := make([]courseListItem, 0, len(list.Courses))
	for _, course := range list.Courses {
		items = append(items, courseListItem{
			ID:          course.ID,
			Title:       course.Title,
			Enrollments: course.Enrollments,
		})
	}

	return c.JSON(http.StatusOK, listCoursesResponse{
		Total:   list.Total,
		Courses: items,
	})
}
