package scoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// HoleScoreStats carries the optional shot-quality fields entered with a
// score. They are stored for the stats views and never feed scoring.
type HoleScoreStats struct {
	FairwayHit *bool
	GreenHit   *bool
	Putts      *int
	Penalties  *int
	SandSave   *bool
	UpAndDown  *bool
}

// RecordHoleScore is the write path for a stroke entry: it derives
// netScore and points from the player's current handicap and the course
// stroke index, upserts the row under its natural key, fans a scramble
// entry out to every teammate, drops the memoized team aggregate, and for
// round 3 refreshes the player's stored match results. Strokes outside
// 1-15 are rejected here before anything is written.
func (e *Engine) RecordHoleScore(ctx context.Context, playerID string, round, holeNumber, strokes int, stats HoleScoreStats) (*storage.HoleScore, error) {
	if strokes < 1 || strokes > 15 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStrokes, strokes)
	}

	course, err := CourseForRound(round)
	if err != nil {
		return nil, err
	}
	hole, err := course.Hole(holeNumber)
	if err != nil {
		return nil, err
	}

	player, err := e.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	score, err := e.buildScoreRow(player, hole, round, strokes, stats)
	if err != nil {
		return nil, err
	}
	if err := e.scores.Put(ctx, score); err != nil {
		return nil, err
	}

	// Scramble: the team plays one ball, so the same strokes are written
	// to every member's row (each with their own derived net).
	if round == 2 && player.TeamID != 0 {
		if err := e.fanOutScrambleScore(ctx, player, hole, strokes, stats); err != nil {
			return nil, err
		}
	}

	e.InvalidateAggregate(ctx, player.TeamID, round)

	if round == 3 {
		if err := e.SyncMatchResultsForPlayer(ctx, playerID); err != nil {
			return nil, err
		}
	}
	return score, nil
}

func (e *Engine) buildScoreRow(player *storage.Player, hole Hole, round, strokes int, stats HoleScoreStats) (*storage.HoleScore, error) {
	net, points, err := HoleResult(player.Handicap, hole, strokes)
	if err != nil {
		return nil, err
	}
	return &storage.HoleScore{
		UserID:              player.ID,
		TeamID:              player.TeamID,
		Round:               round,
		Hole:                hole.Number,
		Strokes:             strokes,
		Par:                 hole.Par,
		HandicapStrokeIndex: hole.StrokeIndex,
		NetScore:            net,
		Points:              points,
		FairwayHit:          stats.FairwayHit,
		GreenHit:            stats.GreenHit,
		Putts:               stats.Putts,
		Penalties:           stats.Penalties,
		SandSave:            stats.SandSave,
		UpAndDown:           stats.UpAndDown,
	}, nil
}

func (e *Engine) fanOutScrambleScore(ctx context.Context, entrant *storage.Player, hole Hole, strokes int, stats HoleScoreStats) error {
	team, err := e.teams.Get(ctx, entrant.TeamID)
	if err != nil {
		return err
	}
	for _, m := range team.Members {
		if m.PlayerID == entrant.ID {
			continue
		}
		mate, err := e.players.Get(ctx, m.PlayerID)
		if err != nil {
			return fmt.Errorf("%w: team %d member %s: %v", ErrTeamIncomplete, team.ID, m.PlayerID, err)
		}
		row, err := e.buildScoreRow(mate, hole, 2, strokes, stats)
		if err != nil {
			return err
		}
		if err := e.scores.Put(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// Scorecard returns a player's stored hole scores for a round in hole
// order.
func (e *Engine) Scorecard(ctx context.Context, playerID string, round int) ([]*storage.HoleScore, error) {
	if _, err := CourseForRound(round); err != nil {
		return nil, err
	}
	scores, err := e.scores.GetByPlayerRound(ctx, playerID, round)
	if err != nil {
		return nil, err
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Hole < scores[j].Hole })
	return scores, nil
}
