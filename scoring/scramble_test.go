package scoring

import (
	"testing"

	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScramble(t *testing.T) {
	team := twoManTeam()

	fullRound := func(strokesPerHole int) []*storage.HoleScore {
		var scores []*storage.HoleScore
		for hole := 1; hole <= 18; hole++ {
			// The write path stores the shared team ball on both rows.
			for _, id := range []string{"AAA11", "BBB22"} {
				scores = append(scores, &storage.HoleScore{
					UserID: id, TeamID: 1, Round: 2, Hole: hole, Strokes: strokesPerHole,
				})
			}
		}
		return scores
	}

	t.Run("flat handicap off the round total", func(t *testing.T) {
		// Handicaps 18 and 20 blend to round(0.35*18 + 0.15*20) = 9,
		// taken off the 18-hole total in one subtraction.
		total, err := ComputeScramble(team, []int{18, 20}, fullRound(4))
		require.NoError(t, err)
		assert.Equal(t, 72, total.GrossStrokes)
		assert.Equal(t, 9, total.TeamHandicap)
		assert.Equal(t, 63, total.NetStrokes)
		assert.Equal(t, -9, total.NetToPar)
		assert.Equal(t, 18, total.HolesCompleted)
	})

	t.Run("duplicate member rows count once per hole", func(t *testing.T) {
		scores := []*storage.HoleScore{
			{UserID: "AAA11", TeamID: 1, Round: 2, Hole: 1, Strokes: 5},
			{UserID: "BBB22", TeamID: 1, Round: 2, Hole: 1, Strokes: 5},
			{UserID: "AAA11", TeamID: 1, Round: 2, Hole: 2, Strokes: 4},
		}
		total, err := ComputeScramble(team, []int{10, 12}, scores)
		require.NoError(t, err)
		assert.Equal(t, 9, total.GrossStrokes)
		assert.Equal(t, 2, total.HolesCompleted)
	})

	t.Run("partial round keeps full handicap subtraction", func(t *testing.T) {
		scores := []*storage.HoleScore{
			{UserID: "AAA11", TeamID: 1, Round: 2, Hole: 1, Strokes: 4},
		}
		total, err := ComputeScramble(team, []int{18, 20}, scores)
		require.NoError(t, err)
		assert.Equal(t, 4-9, total.NetStrokes)
	})

	t.Run("bad team size propagates", func(t *testing.T) {
		_, err := ComputeScramble(team, []int{10}, nil)
		assert.ErrorIs(t, err, ErrBadTeamSize)
	})
}
