package domain

import (
	"context"
	"time"
)

// Derived course status, never persisted.
const (
	CourseUpcoming  = "upcoming"
	CourseOngoing   = "ongoing"
	CourseCompleted = "completed"
)

type Course struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null;size:120" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`
	Capacity       int       `gorm:"not null" json:"capacity"`
	SeatsAvailable int       `gorm:"not null" json:"seats_available"`
	InstructorID   *int      `json:"instructor_id,omitempty"`

	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ReserveSeat takes one seat. The write that makes this stick must happen
// in the same transaction as the enrollment insert.
func (c *Course) ReserveSeat() error {
	if c.SeatsAvailable <= 0 {
		return ErrCapacityExhausted
	}
	c.SeatsAvailable--
	return nil
}

// ReleaseSeat gives one seat back. Callers must only release for an
// enrollment row that actually existed; the coordinator guarantees that.
func (c *Course) ReleaseSeat() {
	c.SeatsAvailable++
}

// Resize changes the capacity and re-derives seats from the current
// enrolled count instead of overwriting blindly.
func (c *Course) Resize(newCapacity int, enrolledCount int) error {
	if newCapacity < 1 {
		return ErrInvalidCapacity
	}
	if newCapacity < enrolledCount {
		return ErrCapacityBelowEnrolled
	}
	c.Capacity = newCapacity
	c.SeatsAvailable = newCapacity - enrolledCount
	if c.SeatsAvailable < 0 {
		c.SeatsAvailable = 0
	}
	return nil
}

// Status derives the schedule state of the course at the given instant.
func (c *Course) Status(now time.Time) string {
	switch {
	case now.Before(c.StartDate):
		return CourseUpcoming
	case now.After(c.EndDate):
		return CourseCompleted
	default:
		return CourseOngoing
	}
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetAll(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id int) (*Course, error)
	Update(ctx context.Context, course *Course) error
	CountEnrollments(ctx context.Context, courseID int) (int64, error)
}

type CourseUseCase interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourses(ctx context.Context, statusFilter string) ([]Course, error)
	GetCourse(ctx context.Context, id int) (*Course, error)
	UpdateCourse(ctx context.Context, id int, patch CoursePatch) (*Course, error)
}

// CoursePatch carries the updatable course fields; nil means unchanged.
type CoursePatch struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	Capacity     *int
	InstructorID *int
}
