package dto

import "campushub/domain"

type CreateInstructorRequest struct {
	Name  string  `json:"name" binding:"required,min=3,max=50"`
	Email string  `json:"email" binding:"required,email"`
	Bio   *string `json:"bio" binding:"omitempty,max=1000"`
}

func MapCreateInstructorRequest(req *CreateInstructorRequest) domain.Instructor {
	return domain.Instructor{
		Name:  req.Name,
		Email: req.Email,
		Bio:   req.Bio,
	}
}

type UpdateInstructorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
	Bio   *string `json:"bio" binding:"omitempty,max=1000"`
}

func MapUpdateInstructorRequest(req *UpdateInstructorRequest) domain.InstructorPatch {
	return domain.InstructorPatch{
		Name:  req.Name,
		Email: req.Email,
		Bio:   req.Bio,
	}
}
