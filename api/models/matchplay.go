package models

import (
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

type CreateGroupRequest struct {
	GroupNumber int      `json:"groupNumber" binding:"required"`
	PlayerIDs   []string `json:"playerIds" binding:"required"`
}

type MatchResponse struct {
	GroupNumber        int    `json:"groupNumber"`
	Player1ID          string `json:"player1Id"`
	Player2ID          string `json:"player2Id"`
	HoleSegment        string `json:"holeSegment"`
	HandicapDifference int    `json:"handicapDifference"`
	StrokesGiven       int    `json:"strokesGiven"`
	StrokeRecipientID  string `json:"strokeRecipientId,omitempty"`
	StrokeHoles        []int  `json:"strokeHoles"`
	WinnerID           string `json:"winnerId,omitempty"`
	Result             string `json:"result,omitempty"`
	Live               *scoring.MatchScore `json:"live,omitempty"`
}

func TransformMatchFromStorage(m *storage.MatchPlayMatch, live *scoring.MatchScore) MatchResponse {
	return MatchResponse{
		GroupNumber:        m.GroupNumber,
		Player1ID:          m.Player1ID,
		Player2ID:          m.Player2ID,
		HoleSegment:        m.HoleSegment,
		HandicapDifference: m.HandicapDifference,
		StrokesGiven:       m.StrokesGiven,
		StrokeRecipientID:  m.StrokeRecipientID,
		StrokeHoles:        m.StrokeHoles,
		WinnerID:           m.WinnerID,
		Result:             m.Result,
		Live:               live,
	}
}
