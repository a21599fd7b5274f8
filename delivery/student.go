package delivery

import (
	"campushub/domain"
	"campushub/dto"
	"campushub/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studUC   domain.StudentUseCase
	enrollUC domain.EnrollmentUseCase
}

func NewStudentHandler(r *gin.Engine, studUC domain.StudentUseCase, enrollUC domain.EnrollmentUseCase) {
	handler := &StudentHandler{studUC: studUC, enrollUC: enrollUC}

	students := r.Group("/students")
	{
		students.POST("", handler.CreateStudent)
		students.GET("", handler.GetStudents)
		students.GET("/:id", handler.GetStudent)
		students.GET("/:id/history", handler.GetStudentHistory)
		students.PATCH("/:id", handler.UpdateStudent)
		students.DELETE("/:id", handler.DeleteStudent)
	}
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "CreateStudent", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to create student",
		})
		return
	}

	student := dto.MapCreateStudentRequest(&req)
	if err := h.studUC.CreateStudent(c.Request.Context(), &student); err != nil {
		respondError(c, "CreateStudent", "Failed to create student", err)
		return
	}

	utils.PrintLogInfo(http.StatusCreated, "CreateStudent", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Student created successfully",
		"data":    student,
	})
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	students, err := h.studUC.GetStudents(c.Request.Context())
	if err != nil {
		respondError(c, "GetStudents", "Failed to fetch students", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetStudents", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    students,
	})
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "GetStudent", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid student ID parameter",
			"message": "Failed to fetch student",
		})
		return
	}

	student, err := h.studUC.GetStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetStudent", "Failed to fetch student", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetStudent", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    student,
	})
}

// GetStudentHistory returns the student's enrollments, past and present,
// with the course attached to each row.
func (h *StudentHandler) GetStudentHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "GetStudentHistory", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid student ID parameter",
			"message": "Failed to fetch enrollment history",
		})
		return
	}

	history, err := h.enrollUC.ListByStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetStudentHistory", "Failed to fetch enrollment history", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetStudentHistory", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    history,
	})
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateStudent", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid student ID parameter",
			"message": "Failed to update student",
		})
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateStudent", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to update student",
		})
		return
	}

	student, err := h.studUC.UpdateStudent(c.Request.Context(), id, dto.MapUpdateStudentRequest(&req))
	if err != nil {
		respondError(c, "UpdateStudent", "Failed to update student", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "UpdateStudent", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student updated successfully",
		"data":    student,
	})
}

// DeleteStudent refuses when enrollments exist unless ?cascade=true is
// passed explicitly; the cascade removes the enrollments and releases
// their seats together with the student.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "DeleteStudent", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid student ID parameter",
			"message": "Failed to delete student",
		})
		return
	}

	if c.Query("cascade") == "true" {
		err = h.enrollUC.RemoveStudentCascade(c.Request.Context(), id)
	} else {
		err = h.enrollUC.RemoveStudent(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, "DeleteStudent", "Failed to delete student", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "DeleteStudent", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student deleted successfully",
	})
}
