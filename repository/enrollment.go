package repository

import (
	"campushub/domain"
	"campushub/utils"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// InTx runs fn against a repository bound to a single transaction. The
// coordinator composes every multi-entity mutation through this.
func (r *enrollmentRepository) InTx(ctx context.Context, fn func(tx domain.EnrollmentRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&enrollmentRepository{db: tx})
	})
}

func (r *enrollmentRepository) GetCourse(ctx context.Context, courseID int) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	return &course, nil
}

func (r *enrollmentRepository) StudentExists(ctx context.Context, studentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Student{}).
		Where("id = ?", studentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check student: %w", err)
	}
	return count > 0, nil
}

func (r *enrollmentRepository) GetEnrollment(ctx context.Context, id int) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).First(&enrollment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch enrollment: %w", err)
	}
	return &enrollment, nil
}

// FindByStudentAndCourse returns nil without error when no row exists.
func (r *enrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID int) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	err := r.db.WithContext(ctx).Create(enrollment).Error
	if err != nil {
		// The (student_id, course_id) unique index closes the race two
		// concurrent enrolls can win past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			utils.IsUniqueViolation(err, "idx_enrollments_student_course") {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepository) UpdateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	res := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]interface{}{
			"completed":       enrollment.Completed,
			"completion_date": enrollment.CompletionDate,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update enrollment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

// DeleteEnrollment removes an active enrollment row. The completed
// filter lives in the statement itself, so a completion committed after
// the caller's read still stops the delete. Zero affected rows means the
// row is either gone or completed; a follow-up read tells them apart.
func (r *enrollmentRepository) DeleteEnrollment(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND completed = ?", id, false).
		Delete(&domain.Enrollment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete enrollment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to delete enrollment: %w", err)
		}
		if count > 0 {
			return domain.ErrCannotCancelCompleted
		}
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *enrollmentRepository) ListEnrollments(ctx context.Context, completed *bool) ([]domain.Enrollment, error) {
	query := r.db.WithContext(ctx).Model(&domain.Enrollment{})
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	var enrollments []domain.Enrollment
	if err := query.Order("enrolled_date DESC").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

// ListByStudent returns a student's enrollment history, newest first,
// with the course attached.
func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID int) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrolled_date DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list student enrollments: %w", err)
	}
	return enrollments, nil
}

// ReserveCourseSeat is the authoritative seat decrement. The conditional
// update serializes concurrent reservations on the course row under
// read-committed isolation: for the last seat exactly one caller sees a
// row affected.
func (r *enrollmentRepository) ReserveCourseSeat(ctx context.Context, courseID int) error {
	res := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ? AND seats_available > 0", courseID).
		UpdateColumn("seats_available", gorm.Expr("seats_available - ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to reserve seat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCapacityExhausted
	}
	return nil
}

func (r *enrollmentRepository) ReleaseCourseSeat(ctx context.Context, courseID int) error {
	res := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ?", courseID).
		UpdateColumn("seats_available", gorm.Expr("seats_available + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to release seat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *enrollmentRepository) CountByCourse(ctx context.Context, courseID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

func (r *enrollmentRepository) DeleteByCourse(ctx context.Context, courseID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&domain.Enrollment{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete course enrollments: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *enrollmentRepository) DeleteCourse(ctx context.Context, courseID int) error {
	res := r.db.WithContext(ctx).Delete(&domain.Course{}, courseID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete course: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *enrollmentRepository) CountByStudent(ctx context.Context, studentID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count student enrollments: %w", err)
	}
	return count, nil
}

func (r *enrollmentRepository) DeleteByStudent(ctx context.Context, studentID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&domain.Enrollment{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete student enrollments: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *enrollmentRepository) DeleteStudent(ctx context.Context, studentID int) error {
	res := r.db.WithContext(ctx).Delete(&domain.Student{}, studentID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete student: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
