package scoring

import "sort"

// Fixed tournament placement point tables by finishing position. The field
// is 7-8 teams; positions beyond the table get a flat 3 points, a
// deliberate tournament rule rather than an extrapolation of the table.
var (
	Round1PlacementPoints = []float64{5, 4.5, 4, 3.5, 3, 2.5, 2, 1.5}
	Round2PlacementPoints = []float64{10, 9, 8, 7, 6, 5, 4, 3}
)

const overflowPlacementPoints = 3

// PlacementTable returns the point table for a stroke-play round.
func PlacementTable(round int) ([]float64, error) {
	switch round {
	case 1:
		return Round1PlacementPoints, nil
	case 2:
		return Round2PlacementPoints, nil
	default:
		return nil, ErrBadRound
	}
}

func placementValue(table []float64, position int) float64 {
	if position < len(table) {
		return table[position]
	}
	return overflowPlacementPoints
}

// TeamStanding is one team's input to placement allocation. TotalPoints is
// the team's accumulated tournament points, used only to order teams that
// have not started the round.
type TeamStanding struct {
	TeamID         int
	NetStrokes     int
	HolesCompleted int
	TotalPoints    float64
}

// PlacementResult is one team's awarded position and points for a round.
type PlacementResult struct {
	TeamID         int     `json:"teamId"`
	Position       int     `json:"position"`
	NetStrokes     int     `json:"netStrokes"`
	HolesCompleted int     `json:"holesCompleted"`
	Points         float64 `json:"points"`
}

// AllocatePlacementPoints ranks teams by ascending net strokes and awards
// the table's points. Teams tied on net strokes share the arithmetic mean
// of the point values over the positions they jointly occupy, for any tie
// width. Teams with no holes completed are excluded from the ranking and
// appended afterwards, ordered by accumulated total points, with no points
// from this round. The same algorithm serves final and in-progress
// standings; the caller decides which teams to feed in.
func AllocatePlacementPoints(table []float64, standings []TeamStanding) []PlacementResult {
	active := make([]TeamStanding, 0, len(standings))
	idle := make([]TeamStanding, 0)
	for _, s := range standings {
		if s.HolesCompleted > 0 {
			active = append(active, s)
		} else {
			idle = append(idle, s)
		}
	}

	sort.SliceStable(active, func(i, j int) bool { return active[i].NetStrokes < active[j].NetStrokes })
	sort.SliceStable(idle, func(i, j int) bool { return idle[i].TotalPoints > idle[j].TotalPoints })

	results := make([]PlacementResult, 0, len(standings))
	for i := 0; i < len(active); {
		j := i
		for j < len(active) && active[j].NetStrokes == active[i].NetStrokes {
			j++
		}
		// Positions i..j-1 are tied; split their combined points evenly.
		sum := 0.0
		for pos := i; pos < j; pos++ {
			sum += placementValue(table, pos)
		}
		share := sum / float64(j-i)
		for pos := i; pos < j; pos++ {
			results = append(results, PlacementResult{
				TeamID:         active[pos].TeamID,
				Position:       i + 1,
				NetStrokes:     active[pos].NetStrokes,
				HolesCompleted: active[pos].HolesCompleted,
				Points:         share,
			})
		}
		i = j
	}

	for k, s := range idle {
		results = append(results, PlacementResult{
			TeamID:         s.TeamID,
			Position:       len(active) + k + 1,
			NetStrokes:     s.NetStrokes,
			HolesCompleted: 0,
		})
	}
	return results
}
