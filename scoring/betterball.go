package scoring

import (
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// BetterBallTotal is the round 1 rollup for a team: per hole, the lowest
// net score among the members whose ball counts on that hole.
type BetterBallTotal struct {
	TeamID         int `json:"teamId"`
	GrossStrokes   int `json:"grossStrokes"`
	NetStrokes     int `json:"netStrokes"`
	HolesCompleted int `json:"holesCompleted"`
}

// DefaultThreeManRotation is the tournament's rotating-partner schedule for
// the single three-person team: only two of the three balls count outside
// holes 13-18. Member values are zero-based slots into Team.Members.
func DefaultThreeManRotation() []storage.RotationRange {
	return []storage.RotationRange{
		{FromHole: 1, ToHole: 6, Members: []int{0, 1}},
		{FromHole: 7, ToHole: 9, Members: []int{1, 2}},
		{FromHole: 10, ToHole: 12, Members: []int{0, 2}},
		{FromHole: 13, ToHole: 18, Members: []int{0, 1, 2}},
	}
}

// eligibleSlots returns the member slots whose scores count on the given
// hole. Teams without a rotation table play every ball on every hole; a
// three-person team without an explicit table gets the default rotation.
func eligibleSlots(team *storage.Team, hole int) []int {
	rotation := team.PairRotation
	if len(rotation) == 0 {
		if !team.IsThreePersonTeam {
			all := make([]int, len(team.Members))
			for i := range team.Members {
				all[i] = i
			}
			return all
		}
		rotation = DefaultThreeManRotation()
	}
	for _, r := range rotation {
		if hole >= r.FromHole && hole <= r.ToHole {
			return r.Members
		}
	}
	return nil
}

// ComputeBetterBall rolls hole scores up into the team's better-ball round
// total. Each member's net is computed from their current individual
// handicap against the stroke index recorded on the row; the per-hole gross
// minimum is tracked independently of the net minimum because the player
// with the lowest net is not necessarily the player with the lowest gross.
func ComputeBetterBall(team *storage.Team, handicaps map[string]int, scores []*storage.HoleScore) BetterBallTotal {
	slotOf := make(map[string]int, len(team.Members))
	for i, m := range team.Members {
		slotOf[m.PlayerID] = i
	}

	byHole := make(map[int][]*storage.HoleScore)
	for _, sc := range scores {
		byHole[sc.Hole] = append(byHole[sc.Hole], sc)
	}

	total := BetterBallTotal{TeamID: team.ID}
	for hole, holeScores := range byHole {
		total.HolesCompleted++

		eligible := eligibleSlots(team, hole)
		bestNet, bestGross := 0, 0
		counted := false
		for _, sc := range holeScores {
			slot, onTeam := slotOf[sc.UserID]
			if !onTeam || !containsInt(eligible, slot) {
				continue
			}
			net := NetScore(sc.Strokes, StrokesReceived(handicaps[sc.UserID], sc.HandicapStrokeIndex))
			if !counted || net < bestNet {
				bestNet = net
			}
			if !counted || sc.Strokes < bestGross {
				bestGross = sc.Strokes
			}
			counted = true
		}
		if counted {
			total.NetStrokes += bestNet
			total.GrossStrokes += bestGross
		}
	}
	return total
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
