package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOverallStandings(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	teamA := f.addTeam(t, 1, 0, 0)
	teamB := f.addTeam(t, 2, 0, 0)

	// Team 1 wins round 1, team 2 wins round 2.
	for hole := 1; hole <= 18; hole++ {
		_, err := f.engine.RecordHoleScore(ctx, teamA[0], 1, hole, 4, HoleScoreStats{})
		require.NoError(t, err)
		_, err = f.engine.RecordHoleScore(ctx, teamB[0], 1, hole, 5, HoleScoreStats{})
		require.NoError(t, err)
		_, err = f.engine.RecordHoleScore(ctx, teamA[0], 2, hole, 5, HoleScoreStats{})
		require.NoError(t, err)
		_, err = f.engine.RecordHoleScore(ctx, teamB[0], 2, hole, 4, HoleScoreStats{})
		require.NoError(t, err)
	}

	overall, err := f.engine.ComputeOverallStandings(ctx)
	require.NoError(t, err)
	require.Len(t, overall.Standings, 2)
	assert.Empty(t, overall.Failures)

	// Team 2: 4.5 + 10 = 14.5 beats team 1's 5 + 9 = 14.
	top := overall.Standings[0]
	assert.Equal(t, 2, top.TeamID)
	assert.Equal(t, 1, top.Position)
	assert.Equal(t, 4.5, top.Round1Points)
	assert.Equal(t, 10.0, top.Round2Points)
	assert.Equal(t, 0.0, top.MatchPlayPoints)
	assert.Equal(t, 14.5, top.TotalPoints)

	second := overall.Standings[1]
	assert.Equal(t, 1, second.TeamID)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 14.0, second.TotalPoints)
}

func TestOverallStandingsWithMatchPlay(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	teamA := f.addTeam(t, 1, 10, 10)
	teamB := f.addTeam(t, 2, 10, 10)
	_, err := f.engine.SetupGroupMatches(ctx, 1, append(append([]string{}, teamA...), teamB...))
	require.NoError(t, err)

	overall, err := f.engine.ComputeOverallStandings(ctx)
	require.NoError(t, err)
	require.Len(t, overall.Standings, 2)

	// Every match halves without scores: 6 points per player, 12 per team,
	// stacked on top of the idle stroke-play rounds' zero.
	for _, s := range overall.Standings {
		assert.Equal(t, 12.0, s.MatchPlayPoints)
		assert.Equal(t, 0.0, s.Round1Points)
		assert.Equal(t, 12.0, s.TotalPoints)
		assert.Equal(t, 1, s.Position, "tied teams share first")
	}
}
