package delivery

import (
	"campushub/domain"
	"campushub/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusForError maps the domain's business errors onto HTTP statuses.
// Anything outside the closed set is an infrastructure failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrInstructorNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCapacity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCapacityExhausted),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrAlreadyCompleted),
		errors.Is(err, domain.ErrCannotCancelCompleted),
		errors.Is(err, domain.ErrCapacityBelowEnrolled),
		errors.Is(err, domain.ErrCourseHasEnrollments),
		errors.Is(err, domain.ErrStudentHasEnrollments),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, handlerName, message string, err error) {
	status := statusForError(err)

	detail := err.Error()
	if !domain.IsBusinessError(err) {
		detail = utils.TranslateDBError(err)
	}

	utils.PrintLogInfo(status, handlerName, err)
	c.JSON(status, gin.H{
		"success": false,
		"error":   detail,
		"message": message,
	})
}
