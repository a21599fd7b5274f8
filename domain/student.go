package domain

import (
	"context"
	"time"
)

type Student struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null;size:50" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

// StudentPatch carries optional field edits; nil means keep.
type StudentPatch struct {
	Name  *string
	Email *string
}

// Student deletion is owned by the enrollment coordinator, which has to
// settle the student's enrollments first.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetAll(ctx context.Context) ([]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Update(ctx context.Context, student *Student) error
}

type StudentUseCase interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetStudents(ctx context.Context) ([]Student, error)
	GetStudent(ctx context.Context, id int) (*Student, error)
	UpdateStudent(ctx context.Context, id int, patch StudentPatch) (*Student, error)
}
