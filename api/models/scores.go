package models

import (
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

type RecordScoreRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Round    int    `json:"round" binding:"required"`
	Hole     int    `json:"hole" binding:"required"`
	Strokes  int    `json:"strokes" binding:"required"`
	// Optional shot-quality stats; stored but never used for scoring.
	FairwayHit *bool `json:"fairwayHit"`
	GreenHit   *bool `json:"greenHit"`
	Putts      *int  `json:"putts"`
	Penalties  *int  `json:"penalties"`
	SandSave   *bool `json:"sandSave"`
	UpAndDown  *bool `json:"upAndDown"`
}

type HoleScoreResponse struct {
	UserID              string `json:"userId"`
	TeamID              int    `json:"teamId"`
	Round               int    `json:"round"`
	Hole                int    `json:"hole"`
	Strokes             int    `json:"strokes"`
	Par                 int    `json:"par"`
	HandicapStrokeIndex int    `json:"handicapStrokeIndex"`
	NetScore            int    `json:"netScore"`
	Points              int    `json:"points"`
}

type ScorecardResponse struct {
	PlayerID string              `json:"playerId"`
	Round    int                 `json:"round"`
	Holes    []HoleScoreResponse `json:"holes"`
}

func TransformHoleScoreFromStorage(sc *storage.HoleScore) HoleScoreResponse {
	return HoleScoreResponse{
		UserID:              sc.UserID,
		TeamID:              sc.TeamID,
		Round:               sc.Round,
		Hole:                sc.Hole,
		Strokes:             sc.Strokes,
		Par:                 sc.Par,
		HandicapStrokeIndex: sc.HandicapStrokeIndex,
		NetScore:            sc.NetScore,
		Points:              sc.Points,
	}
}
