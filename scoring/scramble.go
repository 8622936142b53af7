package scoring

import (
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// ScrambleTotal is the round 2 rollup. The whole team plays one ball, so
// the write path stores the same strokes on every member's row for a hole;
// the rollup counts that value once per hole, and the blended team handicap
// comes off the round total in one flat subtraction rather than hole by
// hole.
type ScrambleTotal struct {
	TeamID         int `json:"teamId"`
	GrossStrokes   int `json:"grossStrokes"`
	TeamHandicap   int `json:"teamHandicap"`
	NetStrokes     int `json:"netStrokes"`
	NetToPar       int `json:"netToPar"`
	HolesCompleted int `json:"holesCompleted"`
}

// ComputeScramble rolls hole scores up into the team's scramble total.
// memberHandicaps are the current individual handicaps of the 2 or 3
// members, in any order.
func ComputeScramble(team *storage.Team, memberHandicaps []int, scores []*storage.HoleScore) (ScrambleTotal, error) {
	teamHandicap, err := TeamHandicap(memberHandicaps)
	if err != nil {
		return ScrambleTotal{}, err
	}

	strokesByHole := make(map[int]int)
	for _, sc := range scores {
		// Every member row for a hole carries the identical shared
		// strokes value; the first one seen wins.
		if _, seen := strokesByHole[sc.Hole]; !seen {
			strokesByHole[sc.Hole] = sc.Strokes
		}
	}

	total := ScrambleTotal{TeamID: team.ID, TeamHandicap: teamHandicap}
	for _, strokes := range strokesByHole {
		total.GrossStrokes += strokes
		total.HolesCompleted++
	}
	total.NetStrokes = total.GrossStrokes - teamHandicap
	total.NetToPar = total.NetStrokes - 72
	return total, nil
}
