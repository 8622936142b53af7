package scoring

import (
	"context"
	"sort"
)

// OverallStanding is one team's row in the cross-round score table.
type OverallStanding struct {
	Position        int     `json:"position"`
	TeamID          int     `json:"teamId"`
	TeamNumber      int     `json:"teamNumber"`
	TeamName        string  `json:"teamName"`
	Round1Points    float64 `json:"round1Points"`
	Round2Points    float64 `json:"round2Points"`
	MatchPlayPoints float64 `json:"matchPlayPoints"`
	TotalPoints     float64 `json:"totalPoints"`
}

type OverallStandings struct {
	Standings []OverallStanding `json:"standings"`
	Failures  []EntryFailure    `json:"failures,omitempty"`
}

// ComputeOverallStandings combines each team's placement points from the
// two stroke-play rounds with its match play points into the tournament
// table. A team that fails one round's computation still appears with the
// points it earned elsewhere, and the failure is reported.
func (e *Engine) ComputeOverallStandings(ctx context.Context) (*OverallStandings, error) {
	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byTeam := make(map[int]*OverallStanding, len(teams))
	for _, team := range teams {
		byTeam[team.ID] = &OverallStanding{
			TeamID:     team.ID,
			TeamNumber: team.TeamNumber,
			TeamName:   team.Name,
		}
	}

	result := &OverallStandings{}
	for _, round := range []int{1, 2} {
		table, _ := PlacementTable(round)
		standings := make([]TeamStanding, 0, len(teams))
		for _, team := range teams {
			agg, err := e.TeamRoundAggregate(ctx, team.ID, round)
			if err != nil {
				result.Failures = append(result.Failures, EntryFailure{TeamID: team.ID, Error: err.Error()})
				continue
			}
			standings = append(standings, TeamStanding{
				TeamID:         team.ID,
				NetStrokes:     agg.NetStrokes,
				HolesCompleted: agg.HolesCompleted,
			})
		}
		for _, res := range AllocatePlacementPoints(table, standings) {
			if round == 1 {
				byTeam[res.TeamID].Round1Points = res.Points
			} else {
				byTeam[res.TeamID].Round2Points = res.Points
			}
		}
	}

	matchPoints, matchFailures := e.teamMatchPoints(ctx)
	result.Failures = append(result.Failures, matchFailures...)
	for teamID, pts := range matchPoints {
		if standing, ok := byTeam[teamID]; ok {
			standing.MatchPlayPoints = float64(pts)
		}
	}

	for _, standing := range byTeam {
		standing.TotalPoints = standing.Round1Points + standing.Round2Points + standing.MatchPlayPoints
		result.Standings = append(result.Standings, *standing)
	}
	sort.SliceStable(result.Standings, func(i, j int) bool {
		if result.Standings[i].TotalPoints != result.Standings[j].TotalPoints {
			return result.Standings[i].TotalPoints > result.Standings[j].TotalPoints
		}
		return result.Standings[i].TeamNumber < result.Standings[j].TeamNumber
	})
	for i := range result.Standings {
		if i > 0 && result.Standings[i].TotalPoints == result.Standings[i-1].TotalPoints {
			result.Standings[i].Position = result.Standings[i-1].Position
		} else {
			result.Standings[i].Position = i + 1
		}
	}
	return result, nil
}
