package service

import (
	"campushub/domain"
	"campushub/utils"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// enrollmentService coordinates course seats and enrollment lifecycle.
// It is the only place course and enrollment mutations are combined, and
// every combined write runs in one transaction.
type enrollmentService struct {
	repo domain.EnrollmentRepository
}

func NewEnrollmentService(repo domain.EnrollmentRepository) domain.EnrollmentUseCase {
	return &enrollmentService{repo: repo}
}

// Enroll registers a student into a course and takes one seat.
//
// Existence, capacity and duplicate checks run before the transaction to
// fail fast; the authoritative seat decrement happens inside the same
// transaction as the row insert so two concurrent calls for the last
// seat can never both win.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.StudentExists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrStudentNotFound
	}

	if err := course.ReserveSeat(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyEnrolled
	}

	enrollment, err := s.enrollTx(ctx, studentID, courseID)
	if err != nil && utils.IsSerializationFailure(err) {
		// An isolation conflict on the course row is not a business
		// failure; re-run once against fresh state before giving up.
		log.Warn().Int("course_id", courseID).Int("student_id", studentID).
			Msg("serialization conflict during enroll, retrying once")
		enrollment, err = s.enrollTx(ctx, studentID, courseID)
	}
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *enrollmentService) enrollTx(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	enrollment := &domain.Enrollment{
		StudentID:    studentID,
		CourseID:     courseID,
		EnrolledDate: time.Now(),
		Completed:    false,
	}

	err := s.repo.InTx(ctx, func(tx domain.EnrollmentRepository) error {
		if err := tx.CreateEnrollment(ctx, enrollment); err != nil {
			return err
		}
		return tx.ReserveCourseSeat(ctx, courseID)
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Unenroll cancels an active enrollment: the row is deleted and the seat
// released in one transaction. Completed enrollments stay put.
func (s *enrollmentService) Unenroll(ctx context.Context, enrollmentID int) error {
	enrollment, err := s.repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return err
	}

	if err := enrollment.EnsureCancelable(); err != nil {
		return err
	}

	// Defensive: a dangling course reference means the schema is broken.
	if _, err := s.repo.GetCourse(ctx, enrollment.CourseID); err != nil {
		return err
	}

	return s.repo.InTx(ctx, func(tx domain.EnrollmentRepository) error {
		// DeleteEnrollment fails on a row that is already gone or that
		// completed after the read above, so a racing cancel can never
		// release the seat twice and a racing complete keeps its seat.
		if err := tx.DeleteEnrollment(ctx, enrollment.ID); err != nil {
			return err
		}
		return tx.ReleaseCourseSeat(ctx, enrollment.CourseID)
	})
}

// Complete marks an enrollment finished. The seat is deliberately not
// released: a completed enrollment still occupies its historical slot,
// which is what distinguishes completion from cancellation.
func (s *enrollmentService) Complete(ctx context.Context, enrollmentID int) (*domain.Enrollment, error) {
	enrollment, err := s.repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if err := enrollment.MarkCompleted(time.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *enrollmentService) ListAll(ctx context.Context) ([]domain.Enrollment, error) {
	return s.repo.ListEnrollments(ctx, nil)
}

func (s *enrollmentService) ListActive(ctx context.Context) ([]domain.Enrollment, error) {
	active := false
	return s.repo.ListEnrollments(ctx, &active)
}

func (s *enrollmentService) ListByCompletion(ctx context.Context, completed bool) ([]domain.Enrollment, error) {
	return s.repo.ListEnrollments(ctx, &completed)
}

// ListByStudent returns a student's full enrollment history, completed
// rows included.
func (s *enrollmentService) ListByStudent(ctx context.Context, studentID int) ([]domain.Enrollment, error) {
	exists, err := s.repo.StudentExists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrStudentNotFound
	}
	return s.repo.ListByStudent(ctx, studentID)
}

// RemoveCourse deletes a course only when nothing is enrolled in it.
func (s *enrollmentService) RemoveCourse(ctx context.Context, courseID int) error {
	count, err := s.repo.CountByCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCourseHasEnrollments
	}
	return s.repo.DeleteCourse(ctx, courseID)
}

// RemoveCourseCascade deletes the course together with all of its
// enrollments in one transaction. Callers opt into the data loss
// explicitly by picking this path.
func (s *enrollmentService) RemoveCourseCascade(ctx context.Context, courseID int) error {
	return s.repo.InTx(ctx, func(tx domain.EnrollmentRepository) error {
		removed, err := tx.DeleteByCourse(ctx, courseID)
		if err != nil {
			return err
		}
		if err := tx.DeleteCourse(ctx, courseID); err != nil {
			return err
		}
		log.Info().Int("course_id", courseID).Int64("enrollments_removed", removed).
			Msg("course removed with cascade")
		return nil
	})
}

// RemoveStudent deletes a student only when no enrollments reference
// them.
func (s *enrollmentService) RemoveStudent(ctx context.Context, studentID int) error {
	count, err := s.repo.CountByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrStudentHasEnrollments
	}
	return s.repo.DeleteStudent(ctx, studentID)
}

// RemoveStudentCascade deletes the student together with all of their
// enrollments in one transaction. The courses outlive the student, and
// every enrollment row holds a seat for as long as it exists, so each
// removed row hands its seat back, completed rows included.
func (s *enrollmentService) RemoveStudentCascade(ctx context.Context, studentID int) error {
	return s.repo.InTx(ctx, func(tx domain.EnrollmentRepository) error {
		enrollments, err := tx.ListByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		for _, enrollment := range enrollments {
			if err := tx.ReleaseCourseSeat(ctx, enrollment.CourseID); err != nil {
				return err
			}
		}

		removed, err := tx.DeleteByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		if err := tx.DeleteStudent(ctx, studentID); err != nil {
			return err
		}
		log.Info().Int("student_id", studentID).Int64("enrollments_removed", removed).
			Msg("student removed with cascade")
		return nil
	})
}
