package domain

import (
	"context"
	"time"
)

type Instructor struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:50" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Bio       *string   `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// InstructorPatch carries optional field edits; nil means keep.
type InstructorPatch struct {
	Name  *string
	Email *string
	Bio   *string
}

type InstructorRepository interface {
	Create(ctx context.Context, instructor *Instructor) error
	GetAll(ctx context.Context) ([]Instructor, error)
	GetByID(ctx context.Context, id int) (*Instructor, error)
	Update(ctx context.Context, instructor *Instructor) error
	Delete(ctx context.Context, id int) error
}

type InstructorUseCase interface {
	CreateInstructor(ctx context.Context, instructor *Instructor) error
	GetInstructors(ctx context.Context) ([]Instructor, error)
	GetInstructor(ctx context.Context, id int) (*Instructor, error)
	UpdateInstructor(ctx context.Context, id int, patch InstructorPatch) (*Instructor, error)
	DeleteInstructor(ctx context.Context, id int) error
}
