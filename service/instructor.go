package service

import (
	"campushub/domain"
	"context"
)

type instructorService struct {
	repo domain.InstructorRepository
}

func NewInstructorService(repo domain.InstructorRepository) domain.InstructorUseCase {
	return &instructorService{repo: repo}
}

func (s *instructorService) CreateInstructor(ctx context.Context, instructor *domain.Instructor) error {
	return s.repo.Create(ctx, instructor)
}

func (s *instructorService) GetInstructors(ctx context.Context) ([]domain.Instructor, error) {
	return s.repo.GetAll(ctx)
}

func (s *instructorService) GetInstructor(ctx context.Context, id int) (*domain.Instructor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *instructorService) UpdateInstructor(ctx context.Context, id int, patch domain.InstructorPatch) (*domain.Instructor, error) {
	instructor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		instructor.Name = *patch.Name
	}
	if patch.Email != nil {
		instructor.Email = *patch.Email
	}
	if patch.Bio != nil {
		instructor.Bio = patch.Bio
	}

	if err := s.repo.Update(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

func (s *instructorService) DeleteInstructor(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
