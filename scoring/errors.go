package scoring

import "errors"

var (
	ErrBadCourse       = errors.New("invalid course configuration")
	ErrBadHole         = errors.New("hole number out of range")
	ErrBadRound        = errors.New("unknown round")
	ErrBadSegment      = errors.New("unknown hole segment")
	ErrBadStrokes      = errors.New("strokes must be at least 1")
	ErrBadTeamSize     = errors.New("team must have 2 or 3 members")
	ErrBadGroupSize    = errors.New("match play group must have exactly 4 players")
	ErrTeamIncomplete  = errors.New("team is missing a member record")
	ErrPlayerNotOnTeam = errors.New("player is not a member of the team")
)
