package domain

import (
	"context"
	"time"
)

// Enrollment links a student to a course. An active enrollment holds one
// seat; cancellation deletes the row, completion keeps it forever.
type Enrollment struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	StudentID      int        `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"student_id"`
	CourseID       int        `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"course_id"`
	EnrolledDate   time.Time  `gorm:"not null" json:"enrolled_date"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// MarkCompleted moves the enrollment to its terminal completed state.
// Completing twice is an error, not a no-op, so double submissions
// surface to the caller.
func (e *Enrollment) MarkCompleted(now time.Time) error {
	if e.Completed {
		return ErrAlreadyCompleted
	}
	e.Completed = true
	e.CompletionDate = &now
	return nil
}

// EnsureCancelable rejects cancellation of a completed enrollment.
// Cancellation itself is modeled as row deletion by the coordinator.
func (e *Enrollment) EnsureCancelable() error {
	if e.Completed {
		return ErrCannotCancelCompleted
	}
	return nil
}

// EnrollmentRepository is the persistence boundary for the enrollment
// coordinator. InTx hands back a repository bound to one transaction;
// every multi-entity mutation goes through it.
type EnrollmentRepository interface {
	InTx(ctx context.Context, fn func(tx EnrollmentRepository) error) error

	GetCourse(ctx context.Context, courseID int) (*Course, error)
	StudentExists(ctx context.Context, studentID int) (bool, error)

	GetEnrollment(ctx context.Context, id int) (*Enrollment, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID int) (*Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
	UpdateEnrollment(ctx context.Context, enrollment *Enrollment) error
	DeleteEnrollment(ctx context.Context, id int) error
	ListEnrollments(ctx context.Context, completed *bool) ([]Enrollment, error)
	ListByStudent(ctx context.Context, studentID int) ([]Enrollment, error)

	ReserveCourseSeat(ctx context.Context, courseID int) error
	ReleaseCourseSeat(ctx context.Context, courseID int) error

	CountByCourse(ctx context.Context, courseID int) (int64, error)
	DeleteByCourse(ctx context.Context, courseID int) (int64, error)
	DeleteCourse(ctx context.Context, courseID int) error

	CountByStudent(ctx context.Context, studentID int) (int64, error)
	DeleteByStudent(ctx context.Context, studentID int) (int64, error)
	DeleteStudent(ctx context.Context, studentID int) error
}

type EnrollmentUseCase interface {
	Enroll(ctx context.Context, studentID, courseID int) (*Enrollment, error)
	Unenroll(ctx context.Context, enrollmentID int) error
	Complete(ctx context.Context, enrollmentID int) (*Enrollment, error)
	ListAll(ctx context.Context) ([]Enrollment, error)
	ListActive(ctx context.Context) ([]Enrollment, error)
	ListByCompletion(ctx context.Context, completed bool) ([]Enrollment, error)
	ListByStudent(ctx context.Context, studentID int) ([]Enrollment, error)
	RemoveCourse(ctx context.Context, courseID int) error
	RemoveCourseCascade(ctx context.Context, courseID int) error
	RemoveStudent(ctx context.Context, studentID int) error
	RemoveStudentCascade(ctx context.Context, studentID int) error
}
