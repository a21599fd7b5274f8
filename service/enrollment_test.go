package service

import (
	"campushub/domain"
	"campushub/repository"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "campushub.db") +
		"?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Instructor{},
		&domain.Student{},
		&domain.Course{},
		&domain.Enrollment{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, capacity, seats int) *domain.Course {
	t.Helper()
	course := &domain.Course{
		Title:          "Operating Systems",
		StartDate:      time.Now().AddDate(0, 0, -1),
		EndDate:        time.Now().AddDate(0, 1, 0),
		Capacity:       capacity,
		SeatsAvailable: seats,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedStudent(t *testing.T, db *gorm.DB, email string) *domain.Student {
	t.Helper()
	student := &domain.Student{Name: "Test Student", Email: email}
	require.NoError(t, db.Create(student).Error)
	return student
}

// seatsInvariant asserts seats_available = capacity - enrollment count.
func seatsInvariant(t *testing.T, db *gorm.DB, courseID int) {
	t.Helper()
	var course domain.Course
	require.NoError(t, db.First(&course, courseID).Error)

	var count int64
	require.NoError(t, db.Model(&domain.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error)

	assert.Equal(t, course.Capacity-int(count), course.SeatsAvailable)
	assert.GreaterOrEqual(t, course.SeatsAvailable, 0)
	assert.LessOrEqual(t, course.SeatsAvailable, course.Capacity)
}

func TestEnroll(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 3, 3)
	student := seedStudent(t, db, "enroll@example.com")

	enrollment, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletionDate)
	assert.Equal(t, student.ID, enrollment.StudentID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.False(t, enrollment.EnrolledDate.IsZero())

	seatsInvariant(t, db, course.ID)
}

func TestEnrollMissingCourse(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))

	student := seedStudent(t, db, "nocourse@example.com")

	_, err := svc.Enroll(context.Background(), student.ID, 999)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestEnrollMissingStudent(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))

	course := seedCourse(t, db, 3, 3)

	_, err := svc.Enroll(context.Background(), 999, course.ID)
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 3, 3)
	student := seedStudent(t, db, "twice@example.com")

	_, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
	seatsInvariant(t, db, course.ID)
}

func TestEnrollNoSeats(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))

	course := seedCourse(t, db, 1, 0)
	student := seedStudent(t, db, "full@example.com")

	_, err := svc.Enroll(context.Background(), student.ID, course.ID)
	assert.ErrorIs(t, err, domain.ErrCapacityExhausted)
}

// Two simultaneous enrolls for the last seat: exactly one wins, the seat
// count never goes negative.
func TestEnrollLastSeatRace(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 1, 1)
	s1 := seedStudent(t, db, "racer1@example.com")
	s2 := seedStudent(t, db, "racer2@example.com")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, studentID := range []int{s1.ID, s2.ID} {
		go func(i, studentID int) {
			defer wg.Done()
			_, errs[i] = svc.Enroll(ctx, studentID, course.ID)
		}(i, studentID)
	}
	wg.Wait()

	var successes, exhausted int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrCapacityExhausted):
			exhausted++
		default:
			t.Fatalf("unexpected enroll error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, exhausted)

	var got domain.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.Equal(t, 0, got.SeatsAvailable)
	seatsInvariant(t, db, course.ID)
}

func TestUnenrollReleasesSeat(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 1, 1)
	s1 := seedStudent(t, db, "leaver@example.com")
	s2 := seedStudent(t, db, "waiter@example.com")

	enrollment, err := svc.Enroll(ctx, s1.ID, course.ID)
	require.NoError(t, err)

	// Course is full now.
	_, err = svc.Enroll(ctx, s2.ID, course.ID)
	require.ErrorIs(t, err, domain.ErrCapacityExhausted)

	// Cancelling frees exactly one seat.
	require.NoError(t, svc.Unenroll(ctx, enrollment.ID))
	seatsInvariant(t, db, course.ID)

	_, err = svc.Enroll(ctx, s2.ID, course.ID)
	require.NoError(t, err)
	seatsInvariant(t, db, course.ID)
}

func TestUnenrollMissing(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))

	err := svc.Unenroll(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestUnenrollCompleted(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 2, 2)
	student := seedStudent(t, db, "grad@example.com")

	enrollment, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, enrollment.ID)
	require.NoError(t, err)

	err = svc.Unenroll(ctx, enrollment.ID)
	assert.ErrorIs(t, err, domain.ErrCannotCancelCompleted)
}

// A completion that lands between the cancel path's read and its
// transaction must still stop the delete: the guard lives in the
// statement, not only in the pre-check.
func TestUnenrollCompletedMidFlight(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewEnrollmentRepository(db)
	svc := NewEnrollmentService(repo)
	ctx := context.Background()

	course := seedCourse(t, db, 2, 2)
	student := seedStudent(t, db, "midflight@example.com")

	enrollment, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	// Read first, the way the cancel path does, and confirm the stale
	// snapshot still looks cancelable.
	stale, err := repo.GetEnrollment(ctx, enrollment.ID)
	require.NoError(t, err)
	require.NoError(t, stale.EnsureCancelable())

	_, err = svc.Complete(ctx, enrollment.ID)
	require.NoError(t, err)

	// Run the same transactional body the cancel path runs against the
	// stale snapshot. The enrollment completed in the meantime, so the
	// delete must refuse and the seat must stay taken.
	err = repo.InTx(ctx, func(tx domain.EnrollmentRepository) error {
		if err := tx.DeleteEnrollment(ctx, stale.ID); err != nil {
			return err
		}
		return tx.ReleaseCourseSeat(ctx, stale.CourseID)
	})
	assert.ErrorIs(t, err, domain.ErrCannotCancelCompleted)
	seatsInvariant(t, db, course.ID)
}

// Completing keeps the seat occupied; only cancellation releases it.
func TestCompleteKeepsSeat(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 5, 5)
	student := seedStudent(t, db, "finisher@example.com")

	enrollment, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	var before domain.Course
	require.NoError(t, db.First(&before, course.ID).Error)

	completed, err := svc.Complete(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletionDate)

	var after domain.Course
	require.NoError(t, db.First(&after, course.ID).Error)
	assert.Equal(t, before.SeatsAvailable, after.SeatsAvailable)
}

func TestCompleteTwice(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 2, 2)
	student := seedStudent(t, db, "double@example.com")

	enrollment, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, enrollment.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, enrollment.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)

	// Completion is terminal.
	var got domain.Enrollment
	require.NoError(t, db.First(&got, enrollment.ID).Error)
	assert.True(t, got.Completed)
}

func TestListByCompletion(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 5, 5)
	s1 := seedStudent(t, db, "active@example.com")
	s2 := seedStudent(t, db, "done@example.com")

	_, err := svc.Enroll(ctx, s1.ID, course.ID)
	require.NoError(t, err)
	e2, err := svc.Enroll(ctx, s2.ID, course.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, e2.ID)
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, s1.ID, active[0].StudentID)

	done, err := svc.ListByCompletion(ctx, true)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, s2.ID, done[0].StudentID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRemoveCourseWithEnrollments(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 5, 5)
	for i := 0; i < 3; i++ {
		student := seedStudent(t, db, fmt.Sprintf("cascade%d@example.com", i))
		_, err := svc.Enroll(ctx, student.ID, course.ID)
		require.NoError(t, err)
	}

	// The plain path refuses while enrollments exist.
	err := svc.RemoveCourse(ctx, course.ID)
	assert.ErrorIs(t, err, domain.ErrCourseHasEnrollments)

	// Cascade takes the course and all three rows together.
	require.NoError(t, svc.RemoveCourseCascade(ctx, course.ID))

	var orphans int64
	require.NoError(t, db.Model(&domain.Enrollment{}).Where("course_id = ?", course.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	err = db.First(&domain.Course{}, course.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRemoveCourseEmpty(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 5, 5)
	require.NoError(t, svc.RemoveCourse(ctx, course.ID))

	err := svc.RemoveCourse(ctx, course.ID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestListByStudent(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	first := seedCourse(t, db, 3, 3)
	second := seedCourse(t, db, 3, 3)
	student := seedStudent(t, db, "history@example.com")

	e1, err := svc.Enroll(ctx, student.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, student.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, e1.ID)
	require.NoError(t, err)

	history, err := svc.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, row := range history {
		assert.NotNil(t, row.Course)
	}

	_, err = svc.ListByStudent(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestRemoveStudentWithEnrollments(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	course := seedCourse(t, db, 3, 3)
	student := seedStudent(t, db, "busy@example.com")

	_, err := svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	err = svc.RemoveStudent(ctx, student.ID)
	assert.ErrorIs(t, err, domain.ErrStudentHasEnrollments)

	var count int64
	require.NoError(t, db.Model(&domain.Student{}).Where("id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveStudentEmpty(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	student := seedStudent(t, db, "idle@example.com")
	require.NoError(t, svc.RemoveStudent(ctx, student.ID))

	err := svc.RemoveStudent(ctx, student.ID)
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

// Cascading a student releases one seat per removed enrollment,
// completed rows included, so every touched course keeps its seat math.
func TestRemoveStudentCascadeReleasesSeats(t *testing.T) {
	db := setupDB(t)
	svc := NewEnrollmentService(repository.NewEnrollmentRepository(db))
	ctx := context.Background()

	first := seedCourse(t, db, 3, 3)
	second := seedCourse(t, db, 3, 3)
	student := seedStudent(t, db, "leaver@example.com")
	other := seedStudent(t, db, "stayer@example.com")

	e1, err := svc.Enroll(ctx, student.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, student.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, other.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, e1.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveStudentCascade(ctx, student.ID))

	var students int64
	require.NoError(t, db.Model(&domain.Student{}).Where("id = ?", student.ID).Count(&students).Error)
	assert.Zero(t, students)

	var orphans int64
	require.NoError(t, db.Model(&domain.Enrollment{}).Where("student_id = ?", student.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	seatsInvariant(t, db, first.ID)
	seatsInvariant(t, db, second.ID)

	// The other student's enrollment survives untouched.
	remaining, err := svc.ListByStudent(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
