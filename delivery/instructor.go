package delivery

import (
	"campushub/domain"
	"campushub/dto"
	"campushub/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type InstructorHandler struct {
	instUC domain.InstructorUseCase
}

func NewInstructorHandler(r *gin.Engine, instUC domain.InstructorUseCase) {
	handler := &InstructorHandler{instUC: instUC}

	instructors := r.Group("/instructors")
	{
		instructors.POST("", handler.CreateInstructor)
		instructors.GET("", handler.GetInstructors)
		instructors.GET("/:id", handler.GetInstructor)
		instructors.PATCH("/:id", handler.UpdateInstructor)
		instructors.DELETE("/:id", handler.DeleteInstructor)
	}
}

func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "CreateInstructor", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to create instructor",
		})
		return
	}

	instructor := dto.MapCreateInstructorRequest(&req)
	if err := h.instUC.CreateInstructor(c.Request.Context(), &instructor); err != nil {
		respondError(c, "CreateInstructor", "Failed to create instructor", err)
		return
	}

	utils.PrintLogInfo(http.StatusCreated, "CreateInstructor", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Instructor created successfully",
		"data":    instructor,
	})
}

func (h *InstructorHandler) GetInstructors(c *gin.Context) {
	instructors, err := h.instUC.GetInstructors(c.Request.Context())
	if err != nil {
		respondError(c, "GetInstructors", "Failed to fetch instructors", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetInstructors", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    instructors,
	})
}

func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "GetInstructor", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid instructor ID parameter",
			"message": "Failed to fetch instructor",
		})
		return
	}

	instructor, err := h.instUC.GetInstructor(c.Request.Context(), id)
	if err != nil {
		respondError(c, "GetInstructor", "Failed to fetch instructor", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "GetInstructor", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    instructor,
	})
}

func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateInstructor", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid instructor ID parameter",
			"message": "Failed to update instructor",
		})
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "UpdateInstructor", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to update instructor",
		})
		return
	}

	instructor, err := h.instUC.UpdateInstructor(c.Request.Context(), id, dto.MapUpdateInstructorRequest(&req))
	if err != nil {
		respondError(c, "UpdateInstructor", "Failed to update instructor", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "UpdateInstructor", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Instructor updated successfully",
		"data":    instructor,
	})
}

func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.PrintLogInfo(http.StatusBadRequest, "DeleteInstructor", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid instructor ID parameter",
			"message": "Failed to delete instructor",
		})
		return
	}

	if err := h.instUC.DeleteInstructor(c.Request.Context(), id); err != nil {
		respondError(c, "DeleteInstructor", "Failed to delete instructor", err)
		return
	}

	utils.PrintLogInfo(http.StatusOK, "DeleteInstructor", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Instructor deleted successfully",
	})
}
