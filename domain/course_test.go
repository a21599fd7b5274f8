package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseReserveSeat(t *testing.T) {
	course := Course{Capacity: 2, SeatsAvailable: 2}

	require.NoError(t, course.ReserveSeat())
	assert.Equal(t, 1, course.SeatsAvailable)

	require.NoError(t, course.ReserveSeat())
	assert.Equal(t, 0, course.SeatsAvailable)

	err := course.ReserveSeat()
	assert.ErrorIs(t, err, ErrCapacityExhausted)
	assert.Equal(t, 0, course.SeatsAvailable)
}

func TestCourseReleaseSeat(t *testing.T) {
	course := Course{Capacity: 5, SeatsAvailable: 3}
	course.ReleaseSeat()
	assert.Equal(t, 4, course.SeatsAvailable)
}

func TestCourseResize(t *testing.T) {
	t.Run("down to enrolled count", func(t *testing.T) {
		course := Course{Capacity: 10, SeatsAvailable: 3}
		require.NoError(t, course.Resize(7, 7))
		assert.Equal(t, 7, course.Capacity)
		assert.Equal(t, 0, course.SeatsAvailable)
	})

	t.Run("below enrolled count", func(t *testing.T) {
		course := Course{Capacity: 10, SeatsAvailable: 3}
		err := course.Resize(6, 7)
		assert.ErrorIs(t, err, ErrCapacityBelowEnrolled)
		assert.Equal(t, 10, course.Capacity)
	})

	t.Run("zero capacity", func(t *testing.T) {
		course := Course{Capacity: 10, SeatsAvailable: 10}
		err := course.Resize(0, 0)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("grow", func(t *testing.T) {
		course := Course{Capacity: 5, SeatsAvailable: 0}
		require.NoError(t, course.Resize(8, 5))
		assert.Equal(t, 8, course.Capacity)
		assert.Equal(t, 3, course.SeatsAvailable)
	})
}

func TestCourseStatus(t *testing.T) {
	now := time.Now()
	course := Course{
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 7),
	}

	assert.Equal(t, CourseOngoing, course.Status(now))
	assert.Equal(t, CourseUpcoming, course.Status(now.AddDate(0, 0, -10)))
	assert.Equal(t, CourseCompleted, course.Status(now.AddDate(0, 0, 10)))
}
