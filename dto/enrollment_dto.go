package dto

type EnrollStudentRequest struct {
	StudentID int `json:"student_id" binding:"required,min=1"`
	CourseID  int `json:"course_id" binding:"required,min=1"`
}
