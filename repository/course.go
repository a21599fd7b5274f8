package repository

import (
	"campushub/domain"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *courseRepository) GetAll(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Order("start_date ASC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).Preload("Instructor").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	return &course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	res := r.db.WithContext(ctx).Model(&domain.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]interface{}{
			"title":           course.Title,
			"description":     course.Description,
			"start_date":      course.StartDate,
			"end_date":        course.EndDate,
			"capacity":        course.Capacity,
			"seats_available": course.SeatsAvailable,
			"instructor_id":   course.InstructorID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update course: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *courseRepository) CountEnrollments(ctx context.Context, courseID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}
