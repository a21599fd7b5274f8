package delivery

import (
	"bytes"
	"campushub/domain"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEnrollmentUC returns canned results so handler mapping can be
// tested without a database.
type stubEnrollmentUC struct {
	enrollErr   error
	unenrollErr error
	enrollment  *domain.Enrollment
}

func (s *stubEnrollmentUC) Enroll(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	if s.enrollErr != nil {
		return nil, s.enrollErr
	}
	return s.enrollment, nil
}

func (s *stubEnrollmentUC) Unenroll(ctx context.Context, enrollmentID int) error {
	return s.unenrollErr
}

func (s *stubEnrollmentUC) Complete(ctx context.Context, enrollmentID int) (*domain.Enrollment, error) {
	return s.enrollment, nil
}

func (s *stubEnrollmentUC) ListAll(ctx context.Context) ([]domain.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentUC) ListActive(ctx context.Context) ([]domain.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentUC) ListByCompletion(ctx context.Context, completed bool) ([]domain.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentUC) ListByStudent(ctx context.Context, studentID int) ([]domain.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentUC) RemoveCourse(ctx context.Context, courseID int) error {
	return nil
}

func (s *stubEnrollmentUC) RemoveCourseCascade(ctx context.Context, courseID int) error {
	return nil
}

func (s *stubEnrollmentUC) RemoveStudent(ctx context.Context, studentID int) error {
	return nil
}

func (s *stubEnrollmentUC) RemoveStudentCascade(ctx context.Context, studentID int) error {
	return nil
}

func newTestRouter(uc domain.EnrollmentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewEnrollmentHandler(r, uc)
	return r
}

func TestStatusForError(t *testing.T) {
	cases := map[error]int{
		domain.ErrCourseNotFound:         http.StatusNotFound,
		domain.ErrStudentNotFound:        http.StatusNotFound,
		domain.ErrEnrollmentNotFound:     http.StatusNotFound,
		domain.ErrCapacityExhausted:      http.StatusConflict,
		domain.ErrAlreadyEnrolled:        http.StatusConflict,
		domain.ErrAlreadyCompleted:       http.StatusConflict,
		domain.ErrCannotCancelCompleted:  http.StatusConflict,
		domain.ErrCapacityBelowEnrolled:  http.StatusConflict,
		domain.ErrCourseHasEnrollments:   http.StatusConflict,
		domain.ErrStudentHasEnrollments:  http.StatusConflict,
		domain.ErrInvalidCapacity:        http.StatusBadRequest,
		errors.New("connection refused"): http.StatusInternalServerError,
	}

	for err, want := range cases {
		assert.Equal(t, want, statusForError(err), "error: %v", err)
	}
}

func TestEnrollHandler(t *testing.T) {
	enrollment := &domain.Enrollment{ID: 1, StudentID: 2, CourseID: 3}
	r := newTestRouter(&stubEnrollmentUC{enrollment: enrollment})

	body, _ := json.Marshal(map[string]int{"student_id": 2, "course_id": 3})
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    domain.Enrollment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, enrollment.ID, resp.Data.ID)
}

func TestEnrollHandlerCapacityExhausted(t *testing.T) {
	r := newTestRouter(&stubEnrollmentUC{enrollErr: domain.ErrCapacityExhausted})

	body, _ := json.Marshal(map[string]int{"student_id": 2, "course_id": 3})
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEnrollHandlerRejectsBadBody(t *testing.T) {
	r := newTestRouter(&stubEnrollmentUC{})

	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader([]byte(`{"student_id": 0}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnenrollHandlerInvalidID(t *testing.T) {
	r := newTestRouter(&stubEnrollmentUC{})

	req := httptest.NewRequest(http.MethodDelete, "/enrollments/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnenrollHandlerCompleted(t *testing.T) {
	r := newTestRouter(&stubEnrollmentUC{unenrollErr: domain.ErrCannotCancelCompleted})

	req := httptest.NewRequest(http.MethodDelete, "/enrollments/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
