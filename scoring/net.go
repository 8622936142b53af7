package scoring

// NetScore is gross strokes minus allocated handicap strokes.
func NetScore(gross, allocated int) int {
	return gross - allocated
}

// StablefordPoints awards points against par on a net score: 2 for net par,
// one more per stroke under, one less per stroke over, floored at 0. Kept
// for the bulk recalculation path; the round 1 and 2 leaderboards rank on
// summed net strokes, not points.
func StablefordPoints(par, net int) int {
	points := 2 + par - net
	if points < 0 {
		return 0
	}
	return points
}

// HoleResult is the write-path computation: whenever strokes are entered or
// edited for a hole, the stored netScore and points are derived here so the
// row never carries a stale or hand-set value.
func HoleResult(handicap int, hole Hole, strokes int) (net, points int, err error) {
	if strokes < 1 {
		return 0, 0, ErrBadStrokes
	}
	allocated := StrokesReceived(handicap, hole.StrokeIndex)
	net = NetScore(strokes, allocated)
	points = StablefordPoints(hole.Par, net)
	return net, points, nil
}
