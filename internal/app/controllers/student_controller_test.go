package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/pkg/apperrors"
)

type mockStudentService struct {
	listFn            func(ctx context.Context, q dto.StudentListQuery) ([]*models.Student, error)
	getByIDFn         func(ctx context.Context, id int64) (*models.Student, error)
	createFn          func(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	updateFn          func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	deleteFn          func(ctx context.Context, id int64) error
	listEnrollmentsFn func(ctx context.Context, q dto.EnrollmentListQuery) ([]*models.Enrollment, error)
}

func (m *mockStudentService) List(ctx context.Context, q dto.StudentListQuery) ([]*models.Student, error) {
	return m.listFn(ctx, q)
}

func (m *mockStudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	return m.createFn(ctx, req)
}

func (m *mockStudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	return m.updateFn(ctx, id, req)
}

func (m *mockStudentService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockStudentService) ListEnrollments(ctx context.Context, q dto.EnrollmentListQuery) ([]*models.Enrollment, error) {
	return m.listEnrollmentsFn(ctx, q)
}

func newStudentRouter(svc *mockStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewStudentController(svc)
	router.GET("/students/courses", controller.ListEnrollments)
	router.GET("/students", controller.ListStudents)
	router.GET("/students/:id", controller.GetStudent)
	router.POST("/students", controller.CreateStudent)
	router.PUT("/students/:id", controller.UpdateStudent)
	router.DELETE("/students/:id", controller.DeleteStudent)
	return router
}

func TestGetStudentNotFoundReturns404(t *testing.T) {
	router := newStudentRouter(&mockStudentService{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, apperrors.NewNotFoundError("Student not found")
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/99", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp["error"] != "Student not found" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestGetStudentInvalidIDReturns400(t *testing.T) {
	router := newStudentRouter(&mockStudentService{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			t.Fatal("service must not be reached with a bad id")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateStudentReturns201WithID(t *testing.T) {
	router := newStudentRouter(&mockStudentService{
		createFn: func(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
			return 17, nil
		},
	})

	body := `{"name":"Ayşe","surname":"Yılmaz","email":"ayse@x.com","department":"Computer Engineering"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp dto.CreatedStudentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !resp.Success || resp.StudentID != 17 {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestUpdateStudentReturnsSuccess(t *testing.T) {
	var gotID int64
	router := newStudentRouter(&mockStudentService{
		updateFn: func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
			gotID = id
			return nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/5", strings.NewReader(`{"name":"Fatma"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotID != 5 {
		t.Errorf("expected id 5 forwarded, got %d", gotID)
	}
	var resp dto.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
}

func TestEnrollmentRouteNotShadowedByStudentID(t *testing.T) {
	enrollmentsCalled := false
	router := newStudentRouter(&mockStudentService{
		listEnrollmentsFn: func(ctx context.Context, q dto.EnrollmentListQuery) ([]*models.Enrollment, error) {
			enrollmentsCalled = true
			return nil, nil
		},
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			t.Fatal("GET /students/courses must route to the enrollment handler")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/courses", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !enrollmentsCalled {
		t.Error("enrollment handler not invoked")
	}
}
