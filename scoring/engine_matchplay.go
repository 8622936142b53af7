package scoring

import (
	"context"
	"sort"

	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// PlayerMatchStanding is one player's row on the match play leaderboard:
// segment points (4/2/0 per segment, 12 max) across their up-to-three
// matches, with raw carry points kept for display.
type PlayerMatchStanding struct {
	Position      int    `json:"position"`
	PlayerID      string `json:"playerId"`
	Name          string `json:"name"`
	TeamID        int    `json:"teamId"`
	SegmentPoints int    `json:"segmentPoints"`
	CarryPoints   int    `json:"carryPoints"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

// grossByHole indexes a player's round 3 gross strokes by hole number.
func grossByHole(scores []*storage.HoleScore) map[int]int {
	gross := make(map[int]int, len(scores))
	for _, sc := range scores {
		gross[sc.Hole] = sc.Strokes
	}
	return gross
}

// scoreStoredMatch fetches both players' round 3 scores and runs the
// carry-over computation. Results are always live: they reflect whatever
// holes have been played so far.
func (e *Engine) scoreStoredMatch(ctx context.Context, match *storage.MatchPlayMatch, grossCache map[string]map[int]int) (MatchScore, error) {
	for _, playerID := range []string{match.Player1ID, match.Player2ID} {
		if _, ok := grossCache[playerID]; ok {
			continue
		}
		scores, err := e.scores.GetByPlayerRound(ctx, playerID, 3)
		if err != nil {
			return MatchScore{}, err
		}
		grossCache[playerID] = grossByHole(scores)
	}
	return ScoreMatch(match, grossCache[match.Player1ID], grossCache[match.Player2ID])
}

// MatchPlayLeaderboard ranks every player in a round 3 group by summed
// segment points. A match whose computation fails is skipped and logged;
// the rest of the board still comes back.
func (e *Engine) MatchPlayLeaderboard(ctx context.Context) ([]PlayerMatchStanding, error) {
	matches, err := e.matches.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*PlayerMatchStanding)
	grossCache := make(map[string]map[int]int)
	for _, match := range matches {
		score, err := e.scoreStoredMatch(ctx, match, grossCache)
		if err != nil {
			logging.Log.Errorf("ENGINE: failed to score match group %d segment %s: %v", match.GroupNumber, match.HoleSegment, err)
			continue
		}

		for _, side := range []struct {
			playerID      string
			segmentPoints int
			carryPoints   int
		}{
			{match.Player1ID, score.SegmentPoints1, score.CarryPoints1},
			{match.Player2ID, score.SegmentPoints2, score.CarryPoints2},
		} {
			standing, ok := byPlayer[side.playerID]
			if !ok {
				standing = &PlayerMatchStanding{PlayerID: side.playerID}
				byPlayer[side.playerID] = standing
			}
			standing.SegmentPoints += side.segmentPoints
			standing.CarryPoints += side.carryPoints
			standing.MatchesPlayed++
		}
	}

	standings := make([]PlayerMatchStanding, 0, len(byPlayer))
	for playerID, standing := range byPlayer {
		if player, err := e.players.Get(ctx, playerID); err == nil {
			standing.Name = player.Name
			standing.TeamID = player.TeamID
		} else {
			logging.Log.Warnf("ENGINE: match play standing for unknown player %s", playerID)
		}
		standings = append(standings, *standing)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].SegmentPoints != standings[j].SegmentPoints {
			return standings[i].SegmentPoints > standings[j].SegmentPoints
		}
		if standings[i].CarryPoints != standings[j].CarryPoints {
			return standings[i].CarryPoints > standings[j].CarryPoints
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})
	for i := range standings {
		if i > 0 && standings[i].SegmentPoints == standings[i-1].SegmentPoints && standings[i].CarryPoints == standings[i-1].CarryPoints {
			standings[i].Position = standings[i-1].Position
		} else {
			standings[i].Position = i + 1
		}
	}
	return standings, nil
}

// teamMatchPoints sums member segment points per team. The three-person
// team counts only its best two members.
func (e *Engine) teamMatchPoints(ctx context.Context) (map[int]int, []EntryFailure) {
	points := make(map[int]int)
	var failures []EntryFailure

	standings, err := e.MatchPlayLeaderboard(ctx)
	if err != nil {
		return points, []EntryFailure{{Error: err.Error()}}
	}

	byPlayer := make(map[string]int, len(standings))
	for _, s := range standings {
		byPlayer[s.PlayerID] = s.SegmentPoints
	}

	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return points, []EntryFailure{{Error: err.Error()}}
	}
	for _, team := range teams {
		memberPoints := make([]int, 0, len(team.Members))
		for _, m := range team.Members {
			memberPoints = append(memberPoints, byPlayer[m.PlayerID])
		}
		sort.Sort(sort.Reverse(sort.IntSlice(memberPoints)))
		if team.IsThreePersonTeam && len(memberPoints) == 3 {
			memberPoints = memberPoints[:2]
		}
		total := 0
		for _, p := range memberPoints {
			total += p
		}
		points[team.ID] = total
	}
	return points, failures
}

// teamMatchPlayLeaderboard is the round 3 board: teams ranked by summed
// member segment points (best 2 of 3 for the three-person team).
func (e *Engine) teamMatchPlayLeaderboard(ctx context.Context) (*RoundLeaderboard, error) {
	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	points, failures := e.teamMatchPoints(ctx)

	board := &RoundLeaderboard{Round: 3, Format: formatForRound(3), Failures: failures}
	for _, team := range teams {
		board.Entries = append(board.Entries, RoundLeaderboardEntry{
			TeamID:     team.ID,
			TeamNumber: team.TeamNumber,
			TeamName:   team.Name,
			Points:     float64(points[team.ID]),
		})
	}
	sort.SliceStable(board.Entries, func(i, j int) bool {
		if board.Entries[i].Points != board.Entries[j].Points {
			return board.Entries[i].Points > board.Entries[j].Points
		}
		return board.Entries[i].TeamNumber < board.Entries[j].TeamNumber
	})
	for i := range board.Entries {
		if i > 0 && board.Entries[i].Points == board.Entries[i-1].Points {
			board.Entries[i].Position = board.Entries[i-1].Position
		} else {
			board.Entries[i].Position = i + 1
		}
	}
	return board, nil
}

// SetupGroupMatches creates the six segment matches for a preset
// four-player group with stroke allocation precomputed from current
// handicaps. Re-running it for a group overwrites the same match keys.
func (e *Engine) SetupGroupMatches(ctx context.Context, groupNumber int, playerIDs []string) ([]*storage.MatchPlayMatch, error) {
	players := make([]*storage.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, err := e.players.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	course, err := CourseForRound(3)
	if err != nil {
		return nil, err
	}

	matches, err := BuildGroupMatches(course, groupNumber, players)
	if err != nil {
		return nil, err
	}
	for _, match := range matches {
		if err := e.matches.Put(ctx, match); err != nil {
			return nil, err
		}
	}
	logging.Log.Infof("ENGINE: created %d matches for group %d", len(matches), groupNumber)
	return matches, nil
}

// SyncMatchResultsForPlayer recomputes and stores the live result of every
// match the player is in, called after each round 3 score write so the
// stored rows track the board.
func (e *Engine) SyncMatchResultsForPlayer(ctx context.Context, playerID string) error {
	matches, err := e.matches.GetByPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	grossCache := make(map[string]map[int]int)
	for _, match := range matches {
		score, err := e.scoreStoredMatch(ctx, match, grossCache)
		if err != nil {
			return err
		}
		match.WinnerID = score.WinnerID
		match.Result = score.Result
		match.Points1 = score.SegmentPoints1
		match.Points2 = score.SegmentPoints2
		if err := e.matches.Put(ctx, match); err != nil {
			return err
		}
	}
	return nil
}

// MatchesForGroup returns the stored segment matches of a group with live
// results attached.
func (e *Engine) MatchesForGroup(ctx context.Context, groupNumber int) ([]*storage.MatchPlayMatch, []MatchScore, error) {
	matches, err := e.matches.GetByGroup(ctx, groupNumber)
	if err != nil {
		return nil, nil, err
	}
	scores := make([]MatchScore, len(matches))
	grossCache := make(map[string]map[int]int)
	for i, match := range matches {
		score, err := e.scoreStoredMatch(ctx, match, grossCache)
		if err != nil {
			return nil, nil, err
		}
		scores[i] = score
	}
	return matches, scores, nil
}

// MatchesForPlayer is MatchesForGroup keyed by participant.
func (e *Engine) MatchesForPlayer(ctx context.Context, playerID string) ([]*storage.MatchPlayMatch, []MatchScore, error) {
	matches, err := e.matches.GetByPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	scores := make([]MatchScore, len(matches))
	grossCache := make(map[string]map[int]int)
	for i, match := range matches {
		score, err := e.scoreStoredMatch(ctx, match, grossCache)
		if err != nil {
			return nil, nil, err
		}
		scores[i] = score
	}
	return matches, scores, nil
}
