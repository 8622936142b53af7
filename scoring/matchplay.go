package scoring

import (
	"fmt"
	"sort"

	"github.com/NickyGee44/TheGambler-sub000/storage"
)

// Round 3 splits the 18 holes into three fixed 6-hole segments; a player
// faces a different opponent in each.
const (
	SegmentFront  = "1-6"
	SegmentMiddle = "7-12"
	SegmentBack   = "13-18"
)

// Segments lists the three hole segments in play order.
var Segments = []string{SegmentFront, SegmentMiddle, SegmentBack}

// Segment point awards: winner 4, halved segment 2 each, loser 0.
const (
	SegmentWinPoints  = 4
	SegmentHalfPoints = 2
)

// SegmentBounds returns the inclusive hole range of a segment.
func SegmentBounds(segment string) (from, to int, err error) {
	switch segment {
	case SegmentFront:
		return 1, 6, nil
	case SegmentMiddle:
		return 7, 12, nil
	case SegmentBack:
		return 13, 18, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSegment, segment)
	}
}

// SegmentForHole returns the segment a hole belongs to.
func SegmentForHole(hole int) (string, error) {
	switch {
	case hole >= 1 && hole <= 6:
		return SegmentFront, nil
	case hole >= 7 && hole <= 12:
		return SegmentMiddle, nil
	case hole >= 13 && hole <= 18:
		return SegmentBack, nil
	default:
		return "", fmt.Errorf("%w: hole %d", ErrBadHole, hole)
	}
}

// StrokeHoles picks the n hardest holes (lowest stroke index) within a
// segment, capped at the segment's 6 holes. Match play allocates strokes
// per segment, not across the full 18, so the recipient of 3 strokes in a
// match gets them on that segment's 3 hardest holes. The result is in
// ascending hole order.
func StrokeHoles(course *Course, segment string, n int) ([]int, error) {
	from, to, err := SegmentBounds(segment)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []int{}, nil
	}
	if n > 6 {
		n = 6
	}

	holes := make([]Hole, 0, 6)
	for num := from; num <= to; num++ {
		holes = append(holes, course.Holes[num-1])
	}
	sort.Slice(holes, func(i, j int) bool { return holes[i].StrokeIndex < holes[j].StrokeIndex })

	picked := make([]int, 0, n)
	for _, h := range holes[:n] {
		picked = append(picked, h.Number)
	}
	sort.Ints(picked)
	return picked, nil
}

// MatchScore is the live result of one segment match. CarryPoints are the
// raw hole-by-hole skins totals; SegmentPoints are the 4/2/0 award derived
// from them, which is what feeds the match play leaderboard.
type MatchScore struct {
	CarryPoints1   int    `json:"carryPoints1"`
	CarryPoints2   int    `json:"carryPoints2"`
	SegmentPoints1 int    `json:"segmentPoints1"`
	SegmentPoints2 int    `json:"segmentPoints2"`
	WinnerID       string `json:"winnerId,omitempty"`
	Result         string `json:"result"`
	HolesPlayed    int    `json:"holesPlayed"`
}

// ScoreMatch plays out a segment under the carry-over rule. gross1 and
// gross2 map hole number to gross strokes for the two players; holes where
// either side has no score yet are skipped without touching the pot, so an
// unscored hole neither wins points nor resets the carry. The pot starts at
// 1, a halved hole adds 1 and carries, and a won hole pays the whole pot to
// the winner and resets it to 1.
func ScoreMatch(match *storage.MatchPlayMatch, gross1, gross2 map[int]int) (MatchScore, error) {
	from, to, err := SegmentBounds(match.HoleSegment)
	if err != nil {
		return MatchScore{}, err
	}

	strokeHole := make(map[int]bool, len(match.StrokeHoles))
	for _, h := range match.StrokeHoles {
		strokeHole[h] = true
	}

	score := MatchScore{}
	carryover := 1
	for hole := from; hole <= to; hole++ {
		g1, ok1 := gross1[hole]
		g2, ok2 := gross2[hole]
		if !ok1 || !ok2 {
			continue
		}
		score.HolesPlayed++

		net1, net2 := g1, g2
		if strokeHole[hole] {
			if match.StrokeRecipientID == match.Player1ID {
				net1--
			} else if match.StrokeRecipientID == match.Player2ID {
				net2--
			}
		}

		switch {
		case net1 < net2:
			score.CarryPoints1 += carryover
			carryover = 1
		case net2 < net1:
			score.CarryPoints2 += carryover
			carryover = 1
		default:
			carryover++
		}
	}

	switch {
	case score.CarryPoints1 > score.CarryPoints2:
		score.SegmentPoints1 = SegmentWinPoints
		score.WinnerID = match.Player1ID
		score.Result = fmt.Sprintf("%d-%d", score.CarryPoints1, score.CarryPoints2)
	case score.CarryPoints2 > score.CarryPoints1:
		score.SegmentPoints2 = SegmentWinPoints
		score.WinnerID = match.Player2ID
		score.Result = fmt.Sprintf("%d-%d", score.CarryPoints2, score.CarryPoints1)
	default:
		score.SegmentPoints1 = SegmentHalfPoints
		score.SegmentPoints2 = SegmentHalfPoints
		score.Result = "halved"
	}
	return score, nil
}

// GroupPairings is the fixed opponent rotation for a four-player group:
// each player meets a different group member in each segment. Values are
// zero-based indexes into the group's player list.
var GroupPairings = map[string][][2]int{
	SegmentFront:  {{0, 1}, {2, 3}},
	SegmentMiddle: {{0, 2}, {1, 3}},
	SegmentBack:   {{0, 3}, {1, 2}},
}

// BuildGroupMatches precomputes the six segment matches for a preset
// four-player group: handicap difference, stroke recipient (the higher
// handicap of the pair) and the explicit stroke-hole list per segment.
func BuildGroupMatches(course *Course, groupNumber int, players []*storage.Player) ([]*storage.MatchPlayMatch, error) {
	if len(players) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrBadGroupSize, len(players))
	}

	var matches []*storage.MatchPlayMatch
	for _, segment := range Segments {
		for _, pair := range GroupPairings[segment] {
			p1, p2 := players[pair[0]], players[pair[1]]

			diff := p1.Handicap - p2.Handicap
			recipient := ""
			if diff > 0 {
				recipient = p1.ID
			} else if diff < 0 {
				diff = -diff
				recipient = p2.ID
			}

			holes, err := StrokeHoles(course, segment, diff)
			if err != nil {
				return nil, err
			}

			matches = append(matches, &storage.MatchPlayMatch{
				GroupNumber:        groupNumber,
				Player1ID:          p1.ID,
				Player2ID:          p2.ID,
				HoleSegment:        segment,
				HandicapDifference: diff,
				StrokesGiven:       diff,
				StrokeRecipientID:  recipient,
				StrokeHoles:        holes,
			})
		}
	}
	return matches, nil
}
