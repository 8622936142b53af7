package scoring

import (
	"fmt"
	"math"
	"sort"
)

// DefaultHandicap is assigned to players registered without one.
const DefaultHandicap = 20

// StrokesReceived returns the handicap strokes a player or team receives on
// a hole with the given stroke index. For handicaps up to 18 this is one
// stroke iff handicap >= strokeIndex; above 18 the allowance wraps around
// the card, so a 20 handicap gets a second stroke on the two hardest holes.
// Never negative, never fractional.
func StrokesReceived(handicap, strokeIndex int) int {
	if handicap <= 0 {
		return 0
	}
	strokes := handicap / 18
	if strokeIndex <= handicap%18 {
		strokes++
	}
	return strokes
}

// TeamHandicap blends individual handicaps into the team allowance used for
// the scramble and better-ball rollups. The weights are fixed tournament
// policy: the lower-handicap players dominate a team's best-ball outcome,
// so they carry more weight.
//
//	2 players: round(0.35*low + 0.15*high)
//	3 players: round(0.20*low + 0.15*middle + 0.10*high)
//
// The input order does not matter; sorting happens here.
func TeamHandicap(handicaps []int) (int, error) {
	sorted := append([]int(nil), handicaps...)
	sort.Ints(sorted)

	switch len(sorted) {
	case 2:
		return int(math.Round(0.35*float64(sorted[0]) + 0.15*float64(sorted[1]))), nil
	case 3:
		return int(math.Round(0.20*float64(sorted[0]) + 0.15*float64(sorted[1]) + 0.10*float64(sorted[2]))), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrBadTeamSize, len(sorted))
	}
}
