package repository

import (
	"campushub/domain"
	"campushub/utils"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type instructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) domain.InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) Create(ctx context.Context, instructor *domain.Instructor) error {
	err := r.db.WithContext(ctx).Create(instructor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || utils.IsUniqueViolation(err, "email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create instructor: %w", err)
	}
	return nil
}

func (r *instructorRepository) GetAll(ctx context.Context) ([]domain.Instructor, error) {
	var instructors []domain.Instructor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&instructors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch instructors: %w", err)
	}
	return instructors, nil
}

func (r *instructorRepository) GetByID(ctx context.Context, id int) (*domain.Instructor, error) {
	var instructor domain.Instructor
	err := r.db.WithContext(ctx).First(&instructor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("failed to fetch instructor: %w", err)
	}
	return &instructor, nil
}

func (r *instructorRepository) Update(ctx context.Context, instructor *domain.Instructor) error {
	res := r.db.WithContext(ctx).Model(&domain.Instructor{}).
		Where("id = ?", instructor.ID).
		Updates(map[string]interface{}{
			"name":  instructor.Name,
			"email": instructor.Email,
			"bio":   instructor.Bio,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) || utils.IsUniqueViolation(res.Error, "email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to update instructor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInstructorNotFound
	}
	return nil
}

func (r *instructorRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&domain.Instructor{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete instructor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInstructorNotFound
	}
	return nil
}
