package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementTable(t *testing.T) {
	r1, err := PlacementTable(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r1[0])
	assert.Equal(t, 1.5, r1[7])

	r2, err := PlacementTable(2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r2[0])
	assert.Equal(t, 3.0, r2[7])

	_, err = PlacementTable(3)
	assert.ErrorIs(t, err, ErrBadRound)
}

func standingsFor(nets ...int) []TeamStanding {
	standings := make([]TeamStanding, len(nets))
	for i, net := range nets {
		standings[i] = TeamStanding{TeamID: i + 1, NetStrokes: net, HolesCompleted: 18}
	}
	return standings
}

func pointsByTeam(results []PlacementResult) map[int]float64 {
	points := make(map[int]float64, len(results))
	for _, r := range results {
		points[r.TeamID] = r.Points
	}
	return points
}

func TestAllocatePlacementPoints(t *testing.T) {
	t.Run("no ties", func(t *testing.T) {
		results := AllocatePlacementPoints(Round2PlacementPoints, standingsFor(70, 68, 75))
		points := pointsByTeam(results)
		assert.Equal(t, 10.0, points[2])
		assert.Equal(t, 9.0, points[1])
		assert.Equal(t, 8.0, points[3])
		assert.Equal(t, 1, results[0].Position)
		assert.Equal(t, 2, results[1].Position)
	})

	t.Run("two-way tie for first splits the mean", func(t *testing.T) {
		// Positions 1 and 2 are worth 5 and 4.5: each tied team gets 4.75
		// and the next team takes position 3's 4 points.
		results := AllocatePlacementPoints(Round1PlacementPoints, standingsFor(68, 68, 70))
		points := pointsByTeam(results)
		assert.Equal(t, 4.75, points[1])
		assert.Equal(t, 4.75, points[2])
		assert.Equal(t, 4.0, points[3])
		assert.Equal(t, 1, results[0].Position)
		assert.Equal(t, 1, results[1].Position)
		assert.Equal(t, 3, results[2].Position)
	})

	t.Run("three-way tie", func(t *testing.T) {
		// (10+9+8)/3 = 9 each.
		results := AllocatePlacementPoints(Round2PlacementPoints, standingsFor(66, 66, 66, 71))
		points := pointsByTeam(results)
		assert.Equal(t, 9.0, points[1])
		assert.Equal(t, 9.0, points[2])
		assert.Equal(t, 9.0, points[3])
		assert.Equal(t, 7.0, points[4])
	})

	t.Run("overflow positions get the flat award", func(t *testing.T) {
		results := AllocatePlacementPoints(Round2PlacementPoints,
			standingsFor(60, 61, 62, 63, 64, 65, 66, 67, 68, 69))
		points := pointsByTeam(results)
		assert.Equal(t, 3.0, points[8], "last table position")
		assert.Equal(t, 3.0, points[9], "first overflow position")
		assert.Equal(t, 3.0, points[10])
	})

	t.Run("tie spanning the table edge averages table and overflow values", func(t *testing.T) {
		standings := standingsFor(60, 61, 62, 63, 64, 65, 66)
		standings = append(standings,
			TeamStanding{TeamID: 8, NetStrokes: 70, HolesCompleted: 18},
			TeamStanding{TeamID: 9, NetStrokes: 70, HolesCompleted: 18},
		)
		results := AllocatePlacementPoints(Round2PlacementPoints, standings)
		points := pointsByTeam(results)
		// Positions 8 and 9 are worth 3 (table) and 3 (overflow).
		assert.Equal(t, 3.0, points[8])
		assert.Equal(t, 3.0, points[9])
	})

	t.Run("teams yet to start are appended without points", func(t *testing.T) {
		standings := []TeamStanding{
			{TeamID: 1, NetStrokes: 70, HolesCompleted: 18},
			{TeamID: 2, HolesCompleted: 0, TotalPoints: 12},
			{TeamID: 3, HolesCompleted: 0, TotalPoints: 15},
		}
		results := AllocatePlacementPoints(Round1PlacementPoints, standings)
		require.Len(t, results, 3)
		assert.Equal(t, 1, results[0].TeamID)
		assert.Equal(t, 3, results[1].TeamID, "idle teams ordered by accumulated points")
		assert.Equal(t, 2, results[2].TeamID)
		assert.Equal(t, 0.0, results[1].Points)
		assert.Equal(t, 2, results[1].Position)
		assert.Equal(t, 3, results[2].Position)
	})

	t.Run("in-progress teams rank alongside finished ones", func(t *testing.T) {
		standings := []TeamStanding{
			{TeamID: 1, NetStrokes: 40, HolesCompleted: 9},
			{TeamID: 2, NetStrokes: 70, HolesCompleted: 18},
		}
		results := AllocatePlacementPoints(Round1PlacementPoints, standings)
		assert.Equal(t, 1, results[0].TeamID, "partial rounds still rank on net")
	})
}
