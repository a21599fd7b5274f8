package service

import (
	"campushub/domain"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type courseService struct {
	repo domain.CourseRepository
}

func NewCourseService(repo domain.CourseRepository) domain.CourseUseCase {
	return &courseService{repo: repo}
}

// CreateCourse opens a course with every seat free.
func (s *courseService) CreateCourse(ctx context.Context, course *domain.Course) error {
	if course.Capacity < 1 {
		return domain.ErrInvalidCapacity
	}
	course.SeatsAvailable = course.Capacity

	if err := s.repo.Create(ctx, course); err != nil {
		return err
	}
	log.Info().Int("course_id", course.ID).Int("capacity", course.Capacity).Msg("course created")
	return nil
}

// GetCourses lists courses, optionally narrowed to one derived status.
func (s *courseService) GetCourses(ctx context.Context, statusFilter string) ([]domain.Course, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" {
		return courses, nil
	}

	now := time.Now()
	filtered := make([]domain.Course, 0, len(courses))
	for _, course := range courses {
		if course.Status(now) == statusFilter {
			filtered = append(filtered, course)
		}
	}
	return filtered, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int) (*domain.Course, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateCourse applies field edits. A capacity change re-derives the
// seat count from the current enrolled count rather than trusting the
// stored seats_available value.
func (s *courseService) UpdateCourse(ctx context.Context, id int, patch domain.CoursePatch) (*domain.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Capacity != nil && *patch.Capacity != course.Capacity {
		enrolled, err := s.repo.CountEnrollments(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := course.Resize(*patch.Capacity, int(enrolled)); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.StartDate != nil {
		course.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		course.EndDate = *patch.EndDate
	}
	if patch.InstructorID != nil {
		course.InstructorID = patch.InstructorID
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
