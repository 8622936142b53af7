package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentCourses(t *testing.T) {
	for _, course := range []*Course{&PinesCourse, &LakesCourse} {
		assert.NoError(t, course.Validate(), course.Name)
		assert.Equal(t, 72, course.Par(), course.Name)
	}
}

func TestCourseValidate(t *testing.T) {
	t.Run("duplicate stroke index", func(t *testing.T) {
		bad := PinesCourse
		bad.Holes[5].StrokeIndex = bad.Holes[4].StrokeIndex
		assert.ErrorIs(t, bad.Validate(), ErrBadCourse)
	})

	t.Run("par out of range", func(t *testing.T) {
		bad := PinesCourse
		bad.Holes[0].Par = 6
		assert.ErrorIs(t, bad.Validate(), ErrBadCourse)
	})

	t.Run("misnumbered hole", func(t *testing.T) {
		bad := PinesCourse
		bad.Holes[2].Number = 7
		assert.ErrorIs(t, bad.Validate(), ErrBadCourse)
	})
}

func TestCourseForRound(t *testing.T) {
	r1, err := CourseForRound(1)
	require.NoError(t, err)
	r3, err := CourseForRound(3)
	require.NoError(t, err)
	assert.Same(t, r1, r3, "rounds 1 and 3 share a course")

	r2, err := CourseForRound(2)
	require.NoError(t, err)
	assert.NotEqual(t, r1.Name, r2.Name)

	_, err = CourseForRound(4)
	assert.ErrorIs(t, err, ErrBadRound)
	_, err = CourseForRound(0)
	assert.ErrorIs(t, err, ErrBadRound)
}

func TestCourseHole(t *testing.T) {
	h, err := PinesCourse.Hole(4)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Number)
	assert.Equal(t, 1, h.StrokeIndex)

	_, err = PinesCourse.Hole(0)
	assert.ErrorIs(t, err, ErrBadHole)
	_, err = PinesCourse.Hole(19)
	assert.ErrorIs(t, err, ErrBadHole)
}
