package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/courses-api/internal/core/domain"
	"github.com/eduplatform/courses-api/internal/core/ports"
)

type stubCourseService struct {
	createFn func(ctx context.Context, input ports.CreateCourseInput) (string, error)
	getFn    func(ctx context.Context, id string) (*domain.Course, error)
	listFn   func(ctx context.Context, search string) (*ports.CourseList, error)
}

func (s *stubCourseService) Create(ctx context.Context, input ports.CreateCourseInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubCourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) List(ctx context.Context, search string) (*ports.CourseList, error) {
	return s.listFn(ctx, search)
}

func newCourseTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticated(c echo.Context, role string) echo.Context {
	c.Set("sub", "user-1")
	c.Set("role", role)
	return c
}

func TestCourseHandler_Create_Success(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			if input.Title != "Docker fundamentals" {
				t.Fatalf("unexpected title: %q", input.Title)
			}
			return "2b2f6c5d-1111-4a57-9a31-000000000001", nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodPost, "/courses", `{"title":"Docker fundamentals","description":"containers"}`)
	if err := handler.Create(authenticated(c, domain.RoleManager)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["courseId"] == "" || resp["courseId"] == nil {
		t.Fatalf("expected courseId in response, got %+v", resp)
	}
}

// Validation must reject a short title before the service runs.
func TestCourseHandler_Create_TitleTooShort(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodPost, "/courses", `{"title":"Go"}`)
	_ = handler.Create(authenticated(c, domain.RoleManager))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCourseHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodPost, "/courses", `{"description":"no title"}`)
	_ = handler.Create(authenticated(c, domain.RoleManager))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCourseHandler_Create_StoreFailure(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodPost, "/courses", `{"title":"Docker fundamentals"}`)
	_ = handler.Create(authenticated(c, domain.RoleManager))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCourseHandler_Get_Success(t *testing.T) {
	desc := "containers from scratch"
	stub := &stubCourseService{
		getFn: func(ctx context.Context, id string) (*domain.Course, error) {
			return &domain.Course{ID: id, Title: "Docker fundamentals", Description: &desc}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses/6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e", "")
	c.SetParamNames("id")
	c.SetParamValues("6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e")

	if err := handler.Get(authenticated(c, domain.RoleStudent)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	course, ok := resp["course"].(map[string]any)
	if !ok {
		t.Fatalf("expected course in response")
	}
	if course["title"] != "Docker fundamentals" {
		t.Fatalf("unexpected title: %v", course["title"])
	}
}

// Absent description serializes as JSON null, matching the storage shape.
func TestCourseHandler_Get_NullDescription(t *testing.T) {
	stub := &stubCourseService{
		getFn: func(ctx context.Context, id string) (*domain.Course, error) {
			return &domain.Course{ID: id, Title: "Docker fundamentals"}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses/6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e", "")
	c.SetParamNames("id")
	c.SetParamValues("6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e")

	if err := handler.Get(authenticated(c, domain.RoleStudent)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"description":null`) {
		t.Fatalf("expected null description, got %s", rec.Body.String())
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	stub := &stubCourseService{
		getFn: func(ctx context.Context, id string) (*domain.Course, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses/6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e", "")
	c.SetParamNames("id")
	c.SetParamValues("6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e")

	_ = handler.Get(authenticated(c, domain.RoleStudent))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCourseHandler_Get_MalformedID(t *testing.T) {
	stub := &stubCourseService{
		getFn: func(ctx context.Context, id string) (*domain.Course, error) {
			return nil, domain.ErrInvalidCourseID
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_ = handler.Get(authenticated(c, domain.RoleStudent))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCourseHandler_Get_NoIdentity(t *testing.T) {
	stub := &stubCourseService{
		getFn: func(ctx context.Context, id string) (*domain.Course, error) {
			t.Fatalf("service should not be called without identity")
			return nil, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses/6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e", "")
	c.SetParamNames("id")
	c.SetParamValues("6f1c0f9e-4c58-4f5a-9d07-8a1f5c2b3d4e")

	if err := handler.Get(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCourseHandler_List_Success(t *testing.T) {
	stub := &stubCourseService{
		listFn: func(ctx context.Context, search string) (*ports.CourseList, error) {
			if search != "docker" {
				t.Fatalf("unexpected search: %q", search)
			}
			return &ports.CourseList{
				Total: 1,
				Courses: []domain.CourseWithEnrollments{
					{ID: "id-1", Title: "Docker fundamentals", Enrollments: 2},
				},
			}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses?search=docker", "")
	if err := handler.List(authenticated(c, domain.RoleStudent)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Total   int64 `json:"total"`
		Courses []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Enrollments int64  `json:"enrollments"`
		} `json:"courses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 1 || len(resp.Courses) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Courses[0].Enrollments != 2 {
		t.Fatalf("expected enrollment count 2, got %d", resp.Courses[0].Enrollments)
	}
}

func TestCourseHandler_List_EmptyResult(t *testing.T) {
	stub := &stubCourseService{
		listFn: func(ctx context.Context, search string) (*ports.CourseList, error) {
			return &ports.CourseList{Total: 0, Courses: nil}, nil
		},
	}
	handler := NewCourseHandler(stub)

	c, rec := newCourseTestContext(t, http.MethodGet, "/courses", "")
	if err := handler.List(authenticated(c, domain.RoleStudent)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"courses":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
