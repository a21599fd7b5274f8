package delivery

import (
	"campushub/domain"
	"campushub/dto"
	"campushub/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUseCase
	enrollUC domain.EnrollmentUseCase
}

func NewCourseHandler(r *gin.Engine, courseUC domain.CourseUseCase, enrollUC domain.EnrollmentUseCase) {
	handler := &CourseHandler{courseUC: courseUC, enrollUC: enrollUC}

	courses := r.Group("/courses")
	{
		courses.POST("", handler.CreateCourse)
		courses.GET("", handler.GetCourses)
		courses.GET("/:id", handler.GetCourse)
		courses.PUT("/:id", handler.UpdateCourse)
		courses.DELETE("/:id", handler.DeleteCourse)
	}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "CreateCourse", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to create course",
		})
		return
	}

	course := dto.MapCreateCourseRequest(&req)
	if err := h.courseUC.CreateCourse(c.Request.Context(), &course); err != nil {
		respondError(c, "CreateCourse", "Failed to create course", err)
		return
	}

	utils.PrintLogInfo(http.StatusCreated, "CreateCourse", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Course created successfully",
		"data":    course,
	})
}

// GetCourses supports ?status=upcoming|ongoing|completed on the derived
// schedule status.
func (h *CourseHandler) GetCourses(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", domain.CourseUpcoming, domain.CourseOngoing, domain.CourseCompleted:
	default:
		utils.PrintLogInfo(http.StatusBadRequest, "GetCourses", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "status must be one of: upcoming, ongoing, completed",
			"message": "Failed to fetch courses",
		})
		return
	}

	courses, err := h.courseUC.GetCourses(c.Request.Context(), status)
	if err != nil {
		respondError(c, "GetCourses", "Failed to fetch courses", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    courses,
	})
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "GetCourse", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid course ID parameter",
			"message": "Failed to fetch course",
		})
		return
	}

	course, err := h.courseUC.GetCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetCourse", "Failed to fetch course", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    course,
	})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateCourse", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid course ID parameter",
			"message": "Failed to update course",
		})
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateCourse", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to update course",
		})
		return
	}

	course, err := h.courseUC.UpdateCourse(c.Request.Context(), id, dto.MapUpdateCourseRequest(&req))
	if err != nil {
		respondError(c, "UpdateCourse", "Failed to update course", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "UpdateCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course updated successfully",
		"data":    course,
	})
}

// DeleteCourse refuses when enrollments exist unless ?cascade=true is
// passed explicitly, in which case the course and all of its enrollments
// go together.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "DeleteCourse", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid course ID parameter",
			"message": "Failed to delete course",
		})
		return
	}

	if c.Query("cascade") == "true" {
		err = h.enrollUC.RemoveCourseCascade(c.Request.Context(), id)
	} else {
		err = h.enrollUC.RemoveCourse(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, "DeleteCourse", "Failed to delete course", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "DeleteCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course deleted successfully",
	})
}
