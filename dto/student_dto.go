package dto

import "campushub/domain"

type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=50"`
	Email string `json:"email" binding:"required,email"`
}

func MapCreateStudentRequest(req *CreateStudentRequest) domain.Student {
	return domain.Student{
		Name:  req.Name,
		Email: req.Email,
	}
}

type UpdateStudentRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func MapUpdateStudentRequest(req *UpdateStudentRequest) domain.StudentPatch {
	return domain.StudentPatch{
		Name:  req.Name,
		Email: req.Email,
	}
}
