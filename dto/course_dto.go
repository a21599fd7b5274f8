package dto

import (
	"campushub/domain"
	"time"
)

type CreateCourseRequest struct {
	Title        string    `json:"title" binding:"required,min=3,max=120"`
	Description  string    `json:"description" binding:"omitempty,max=2000"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	Capacity     int       `json:"capacity" binding:"required,min=1"`
	InstructorID *int      `json:"instructor_id" binding:"omitempty,min=1"`
}

func MapCreateCourseRequest(req *CreateCourseRequest) domain.Course {
	return domain.Course{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Capacity:     req.Capacity,
		InstructorID: req.InstructorID,
	}
}

type UpdateCourseRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=3,max=120"`
	Description  *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate    *time.Time `json:"start_date" binding:"omitempty"`
	EndDate      *time.Time `json:"end_date" binding:"omitempty"`
	Capacity     *int       `json:"capacity" binding:"omitempty,min=1"`
	InstructorID *int       `json:"instructor_id" binding:"omitempty,min=1"`
}

func MapUpdateCourseRequest(req *UpdateCourseRequest) domain.CoursePatch {
	return domain.CoursePatch{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Capacity:     req.Capacity,
		InstructorID: req.InstructorID,
	}
}
