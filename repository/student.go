package repository

import (
	"campushub/domain"
	"campushub/utils"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	err := r.db.WithContext(ctx).Create(student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || utils.IsUniqueViolation(err, "email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *studentRepository) GetAll(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	if err := r.db.WithContext(ctx).Order("enrolled_at DESC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int) (*domain.Student, error) {
	var student domain.Student
	err := r.db.WithContext(ctx).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return &student, nil
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	res := r.db.WithContext(ctx).Model(&domain.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"name":  student.Name,
			"email": student.Email,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) || utils.IsUniqueViolation(res.Error, "email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to update student: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
