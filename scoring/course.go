package scoring

import "fmt"

// Hole is static course reference data. StrokeIndex ranks difficulty 1-18
// (1 = hardest) and drives handicap stroke allocation.
type Hole struct {
	Number      int `json:"number"`
	Par         int `json:"par"`
	Yardage     int `json:"yardage"`
	StrokeIndex int `json:"strokeIndex"`
}

type Course struct {
	Name  string   `json:"name"`
	Holes [18]Hole `json:"holes"`
}

// Validate checks the course invariants: 18 holes numbered 1-18 in order,
// pars of 3/4/5 and stroke indices forming a permutation of 1-18.
func (c *Course) Validate() error {
	seen := make(map[int]bool, 18)
	for i, h := range c.Holes {
		if h.Number != i+1 {
			return fmt.Errorf("%w: course %s hole %d numbered %d", ErrBadCourse, c.Name, i+1, h.Number)
		}
		if h.Par < 3 || h.Par > 5 {
			return fmt.Errorf("%w: course %s hole %d has par %d", ErrBadCourse, c.Name, h.Number, h.Par)
		}
		if h.StrokeIndex < 1 || h.StrokeIndex > 18 || seen[h.StrokeIndex] {
			return fmt.Errorf("%w: course %s hole %d has stroke index %d", ErrBadCourse, c.Name, h.Number, h.StrokeIndex)
		}
		seen[h.StrokeIndex] = true
	}
	return nil
}

// Hole returns the hole with the given number (1-18).
func (c *Course) Hole(number int) (Hole, error) {
	if number < 1 || number > 18 {
		return Hole{}, fmt.Errorf("%w: hole %d", ErrBadHole, number)
	}
	return c.Holes[number-1], nil
}

// Par returns the course par total.
func (c *Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// The two tournament courses. Pinehurst North hosts the better-ball and
// match-play rounds; Lakeside hosts the scramble.
var PinesCourse = Course{
	Name: "Pinehurst North",
	Holes: [18]Hole{
		{1, 4, 402, 5}, {2, 5, 531, 9}, {3, 3, 168, 17}, {4, 4, 441, 1},
		{5, 4, 386, 11}, {6, 3, 155, 15}, {7, 5, 512, 7}, {8, 4, 428, 3},
		{9, 4, 377, 13}, {10, 4, 395, 6}, {11, 3, 142, 18}, {12, 5, 548, 10},
		{13, 4, 433, 2}, {14, 4, 366, 14}, {15, 5, 501, 8}, {16, 3, 189, 16},
		{17, 4, 421, 4}, {18, 4, 390, 12},
	},
}

var LakesCourse = Course{
	Name: "Lakeside",
	Holes: [18]Hole{
		{1, 4, 388, 7}, {2, 4, 410, 3}, {3, 5, 524, 11}, {4, 3, 172, 15},
		{5, 4, 445, 1}, {6, 5, 495, 13}, {7, 4, 404, 5}, {8, 3, 148, 17},
		{9, 4, 372, 9}, {10, 5, 539, 8}, {11, 4, 398, 12}, {12, 3, 135, 18},
		{13, 4, 426, 2}, {14, 4, 381, 10}, {15, 3, 196, 16}, {16, 4, 414, 6},
		{17, 5, 507, 4}, {18, 4, 369, 14},
	},
}

// CourseForRound maps a tournament round to its course. The North course
// is played twice: better-ball on day one and match play on day three.
func CourseForRound(round int) (*Course, error) {
	switch round {
	case 1, 3:
		return &PinesCourse, nil
	case 2:
		return &LakesCourse, nil
	default:
		return nil, fmt.Errorf("%w: round %d", ErrBadRound, round)
	}
}
