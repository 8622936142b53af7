package scoring

import (
	"context"
	"fmt"

	"github.com/NickyGee44/TheGambler-sub000/cache"
	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// Engine derives every leaderboard and aggregate from the stored hole
// scores on demand. It never trusts a stored total: aggregates are
// recomputed from the facts on each call, with a short-TTL cache in front
// of the per-(team, round) rollup that score writes invalidate.
type Engine struct {
	players storage.PlayerStorage
	teams   storage.TeamStorage
	scores  storage.HoleScoreStorage
	matches storage.MatchStorage
	cache   cache.AggregateCache
}

// NewEngine wires the engine to its storage collaborators. aggCache may be
// nil to disable memoization.
func NewEngine(players storage.PlayerStorage, teams storage.TeamStorage, scores storage.HoleScoreStorage, matches storage.MatchStorage, aggCache cache.AggregateCache) *Engine {
	return &Engine{
		players: players,
		teams:   teams,
		scores:  scores,
		matches: matches,
		cache:   aggCache,
	}
}

// RoundAggregate is a team's rollup for a stroke-play round (1 or 2).
type RoundAggregate struct {
	TeamID         int    `json:"teamId"`
	TeamNumber     int    `json:"teamNumber"`
	TeamName       string `json:"teamName"`
	Round          int    `json:"round"`
	GrossStrokes   int    `json:"grossStrokes"`
	NetStrokes     int    `json:"netStrokes"`
	NetToPar       int    `json:"netToPar"`
	TeamHandicap   int    `json:"teamHandicap"`
	HolesCompleted int    `json:"holesCompleted"`
}

// EntryFailure records one team whose computation failed without aborting
// the rest of the batch.
type EntryFailure struct {
	TeamID int    `json:"teamId"`
	Error  string `json:"error"`
}

type RoundLeaderboardEntry struct {
	Position       int     `json:"position"`
	TeamID         int     `json:"teamId"`
	TeamNumber     int     `json:"teamNumber"`
	TeamName       string  `json:"teamName"`
	GrossStrokes   int     `json:"grossStrokes"`
	NetStrokes     int     `json:"netStrokes"`
	NetToPar       int     `json:"netToPar"`
	TeamHandicap   int     `json:"teamHandicap"`
	HolesCompleted int     `json:"holesCompleted"`
	Points         float64 `json:"points"`
	InProgress     bool    `json:"inProgress"`
}

type RoundLeaderboard struct {
	Round    int                     `json:"round"`
	Format   string                  `json:"format"`
	Entries  []RoundLeaderboardEntry `json:"entries"`
	Failures []EntryFailure          `json:"failures,omitempty"`
}

func validateTeam(team *storage.Team) error {
	want := 2
	if team.IsThreePersonTeam {
		want = 3
	}
	if len(team.Members) != want {
		return fmt.Errorf("%w: team %d has %d of %d members", ErrTeamIncomplete, team.ID, len(team.Members), want)
	}
	return nil
}

// memberHandicaps resolves the current handicap of every team member.
// Handicaps are re-read on every computation, never snapshotted, so an
// admin correction takes effect on the next leaderboard request.
func (e *Engine) memberHandicaps(ctx context.Context, team *storage.Team) (map[string]int, error) {
	handicaps := make(map[string]int, len(team.Members))
	for _, m := range team.Members {
		player, err := e.players.Get(ctx, m.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("%w: team %d member %s: %v", ErrTeamIncomplete, team.ID, m.PlayerID, err)
		}
		handicaps[m.PlayerID] = player.Handicap
	}
	return handicaps, nil
}

// TeamRoundAggregate computes (or returns the memoized) stroke-play rollup
// for one team and round.
func (e *Engine) TeamRoundAggregate(ctx context.Context, teamID, round int) (*RoundAggregate, error) {
	key := cache.AggregateKey(teamID, round)
	if e.cache != nil {
		var cached RoundAggregate
		if hit, err := e.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	team, err := e.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	agg, err := e.aggregateTeam(ctx, team, round)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, agg); err != nil {
			logging.Log.Warnf("ENGINE: failed to cache aggregate for team %d round %d: %v", teamID, round, err)
		}
	}
	return agg, nil
}

func (e *Engine) aggregateTeam(ctx context.Context, team *storage.Team, round int) (*RoundAggregate, error) {
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	handicaps, err := e.memberHandicaps(ctx, team)
	if err != nil {
		return nil, err
	}

	scores, err := e.scores.GetByTeamRound(ctx, team.ID, round)
	if err != nil {
		return nil, err
	}

	agg := &RoundAggregate{
		TeamID:     team.ID,
		TeamNumber: team.TeamNumber,
		TeamName:   team.Name,
		Round:      round,
	}

	memberList := make([]int, 0, len(handicaps))
	for _, h := range handicaps {
		memberList = append(memberList, h)
	}

	switch round {
	case 1:
		total := ComputeBetterBall(team, handicaps, scores)
		agg.GrossStrokes = total.GrossStrokes
		agg.NetStrokes = total.NetStrokes
		agg.HolesCompleted = total.HolesCompleted
		th, err := TeamHandicap(memberList)
		if err != nil {
			return nil, err
		}
		agg.TeamHandicap = th
		agg.NetToPar = total.NetStrokes - 72
	case 2:
		total, err := ComputeScramble(team, memberList, scores)
		if err != nil {
			return nil, err
		}
		agg.GrossStrokes = total.GrossStrokes
		agg.NetStrokes = total.NetStrokes
		agg.NetToPar = total.NetToPar
		agg.TeamHandicap = total.TeamHandicap
		agg.HolesCompleted = total.HolesCompleted
	default:
		return nil, fmt.Errorf("%w: %d has no stroke-play aggregate", ErrBadRound, round)
	}
	return agg, nil
}

// InvalidateAggregate drops the memoized rollup after a hole score write.
func (e *Engine) InvalidateAggregate(ctx context.Context, teamID, round int) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Invalidate(ctx, cache.AggregateKey(teamID, round)); err != nil {
		logging.Log.Warnf("ENGINE: failed to invalidate aggregate for team %d round %d: %v", teamID, round, err)
	}
}

// RoundLeaderboard builds the leaderboard for any round, dispatching on
// format: rounds 1 and 2 rank team net strokes and award placement points,
// round 3 ranks team match play points. One team's failure is reported
// alongside the others' results, never instead of them.
func (e *Engine) RoundLeaderboard(ctx context.Context, round int) (*RoundLeaderboard, error) {
	switch round {
	case 1, 2:
		return e.strokePlayLeaderboard(ctx, round)
	case 3:
		return e.teamMatchPlayLeaderboard(ctx)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadRound, round)
	}
}

func formatForRound(round int) string {
	switch round {
	case 1:
		return "better-ball"
	case 2:
		return "scramble"
	default:
		return "match-play"
	}
}

func (e *Engine) strokePlayLeaderboard(ctx context.Context, round int) (*RoundLeaderboard, error) {
	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	table, err := PlacementTable(round)
	if err != nil {
		return nil, err
	}

	totals, _ := e.totalPointsByTeam(ctx)

	board := &RoundLeaderboard{Round: round, Format: formatForRound(round)}
	aggs := make(map[int]*RoundAggregate, len(teams))
	standings := make([]TeamStanding, 0, len(teams))
	for _, team := range teams {
		agg, err := e.TeamRoundAggregate(ctx, team.ID, round)
		if err != nil {
			logging.Log.Errorf("ENGINE: round %d aggregate failed for team %d: %v", round, team.ID, err)
			board.Failures = append(board.Failures, EntryFailure{TeamID: team.ID, Error: err.Error()})
			continue
		}
		aggs[team.ID] = agg
		standings = append(standings, TeamStanding{
			TeamID:         team.ID,
			NetStrokes:     agg.NetStrokes,
			HolesCompleted: agg.HolesCompleted,
			TotalPoints:    totals[team.ID],
		})
	}

	for _, res := range AllocatePlacementPoints(table, standings) {
		agg := aggs[res.TeamID]
		board.Entries = append(board.Entries, RoundLeaderboardEntry{
			Position:       res.Position,
			TeamID:         agg.TeamID,
			TeamNumber:     agg.TeamNumber,
			TeamName:       agg.TeamName,
			GrossStrokes:   agg.GrossStrokes,
			NetStrokes:     agg.NetStrokes,
			NetToPar:       agg.NetToPar,
			TeamHandicap:   agg.TeamHandicap,
			HolesCompleted: agg.HolesCompleted,
			Points:         res.Points,
			InProgress:     agg.HolesCompleted > 0 && agg.HolesCompleted < 18,
		})
	}
	return board, nil
}

// totalPointsByTeam sums each team's tournament points across both
// stroke-play rounds and the match play round. Used to order teams that
// have not started a round and for the overall standings table.
func (e *Engine) totalPointsByTeam(ctx context.Context) (map[int]float64, []EntryFailure) {
	totals := make(map[int]float64)
	var failures []EntryFailure

	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return totals, []EntryFailure{{Error: err.Error()}}
	}

	for _, round := range []int{1, 2} {
		table, _ := PlacementTable(round)
		standings := make([]TeamStanding, 0, len(teams))
		for _, team := range teams {
			agg, err := e.TeamRoundAggregate(ctx, team.ID, round)
			if err != nil {
				failures = append(failures, EntryFailure{TeamID: team.ID, Error: err.Error()})
				continue
			}
			standings = append(standings, TeamStanding{
				TeamID:         team.ID,
				NetStrokes:     agg.NetStrokes,
				HolesCompleted: agg.HolesCompleted,
			})
		}
		for _, res := range AllocatePlacementPoints(table, standings) {
			totals[res.TeamID] += res.Points
		}
	}

	matchPoints, matchFailures := e.teamMatchPoints(ctx)
	failures = append(failures, matchFailures...)
	for teamID, pts := range matchPoints {
		totals[teamID] += float64(pts)
	}
	return totals, failures
}

// RecalculateAllScores re-derives netScore and Stableford points for every
// stored hole score from current player handicaps. Returns how many rows
// were rewritten.
func (e *Engine) RecalculateAllScores(ctx context.Context) (int, error) {
	scores, err := e.scores.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, sc := range scores {
		player, err := e.players.Get(ctx, sc.UserID)
		if err != nil {
			logging.Log.Warnf("ENGINE: skipping recalculation for missing player %s: %v", sc.UserID, err)
			continue
		}
		course, err := CourseForRound(sc.Round)
		if err != nil {
			continue
		}
		hole, err := course.Hole(sc.Hole)
		if err != nil {
			continue
		}
		net, points, err := HoleResult(player.Handicap, hole, sc.Strokes)
		if err != nil {
			logging.Log.Warnf("ENGINE: skipping recalculation for %s r%d h%d: %v", sc.UserID, sc.Round, sc.Hole, err)
			continue
		}
		if net == sc.NetScore && points == sc.Points && hole.StrokeIndex == sc.HandicapStrokeIndex {
			continue
		}
		sc.NetScore = net
		sc.Points = points
		sc.Par = hole.Par
		sc.HandicapStrokeIndex = hole.StrokeIndex
		if err := e.scores.Put(ctx, sc); err != nil {
			return updated, err
		}
		e.InvalidateAggregate(ctx, sc.TeamID, sc.Round)
		updated++
	}
	return updated, nil
}
