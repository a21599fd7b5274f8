package delivery

import (
	"campushub/domain"
	"campushub/dto"
	"campushub/middleware"
	"campushub/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollUC domain.EnrollmentUseCase
}

func NewEnrollmentHandler(r *gin.Engine, enrollUC domain.EnrollmentUseCase) {
	handler := &EnrollmentHandler{enrollUC: enrollUC}

	enrollments := r.Group("/enrollments")
	enrollments.Use(middleware.RateLimit())
	{
		enrollments.POST("", handler.Enroll)
		enrollments.GET("", handler.ListEnrollments)
		enrollments.DELETE("/:id", handler.Unenroll)
		enrollments.PATCH("/:id/complete", handler.Complete)
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "Enroll", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to enroll student",
		})
		return
	}

	enrollment, err := h.enrollUC.Enroll(c.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		respondError(c, "Enroll", "Failed to enroll student", err)
		return
	}

	utils.PrintLogInfo(http.StatusCreated, "Enroll", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Student enrolled successfully",
		"data":    enrollment,
	})
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	enrollmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "Unenroll", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid enrollment ID parameter",
			"message": "Failed to cancel enrollment",
		})
		return
	}

	if err := h.enrollUC.Unenroll(c.Request.Context(), enrollmentID); err != nil {
		respondError(c, "Unenroll", "Failed to cancel enrollment", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "Unenroll", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enrollment cancelled successfully",
	})
}

func (h *EnrollmentHandler) Complete(c *gin.Context) {
	enrollmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "Complete", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid enrollment ID parameter",
			"message": "Failed to complete enrollment",
		})
		return
	}

	enrollment, err := h.enrollUC.Complete(c.Request.Context(), enrollmentID)
	if err != nil {
		respondError(c, "Complete", "Failed to complete enrollment", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "Complete", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enrollment completed successfully",
		"data":    enrollment,
	})
}

// ListEnrollments returns every enrollment, or only one side of the
// completion split when ?completed=true|false is given.
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	var (
		enrollments []domain.Enrollment
		err         error
	)

	switch c.Query("completed") {
	case "true":
		enrollments, err = h.enrollUC.ListByCompletion(c.Request.Context(), true)
	case "false":
		enrollments, err = h.enrollUC.ListActive(c.Request.Context())
	default:
		enrollments, err = h.enrollUC.ListAll(c.Request.Context())
	}
	if err != nil {
		respondError(c, "ListEnrollments", "Failed to fetch enrollments", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "ListEnrollments", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    enrollments,
	})
}
