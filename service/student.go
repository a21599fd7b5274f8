package service

import (
	"campushub/domain"
	"context"
)

type studentService struct {
	repo domain.StudentRepository
}

func NewStudentService(repo domain.StudentRepository) domain.StudentUseCase {
	return &studentService{repo: repo}
}

func (s *studentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	return s.repo.Create(ctx, student)
}

func (s *studentService) GetStudents(ctx context.Context) ([]domain.Student, error) {
	return s.repo.GetAll(ctx)
}

func (s *studentService) GetStudent(ctx context.Context, id int) (*domain.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStudent applies field edits. The email unique constraint is
// re-checked by the write itself.
func (s *studentService) UpdateStudent(ctx context.Context, id int, patch domain.StudentPatch) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Email != nil {
		student.Email = *patch.Email
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}
