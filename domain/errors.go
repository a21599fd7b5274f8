package domain

import "errors"

// Business-rule failures. Handlers map these to HTTP statuses; anything
// outside this set is treated as an infrastructure error.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrCapacityExhausted = errors.New("no seats available in this course")
	ErrAlreadyEnrolled   = errors.New("student already enrolled in this course")

	ErrAlreadyCompleted      = errors.New("enrollment is already completed")
	ErrCannotCancelCompleted = errors.New("completed enrollment cannot be cancelled")

	ErrInvalidCapacity       = errors.New("capacity must be at least 1")
	ErrCapacityBelowEnrolled = errors.New("capacity cannot be lower than the current enrolled count")

	ErrCourseHasEnrollments  = errors.New("course still has enrollments")
	ErrStudentHasEnrollments = errors.New("student still has enrollments")

	ErrEmailTaken = errors.New("email already in use")
)

// IsBusinessError reports whether err belongs to the closed set above.
func IsBusinessError(err error) bool {
	for _, known := range []error{
		ErrCourseNotFound, ErrStudentNotFound, ErrInstructorNotFound,
		ErrEnrollmentNotFound, ErrCapacityExhausted, ErrAlreadyEnrolled,
		ErrAlreadyCompleted, ErrCannotCancelCompleted, ErrInvalidCapacity,
		ErrCapacityBelowEnrolled, ErrCourseHasEnrollments,
		ErrStudentHasEnrollments, ErrEmailTaken,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
