package storage

import "time"

// Player is a registered tournament participant. Handicap is the current
// playing handicap and may be corrected by an admin at any time; scoring
// always reads the value stored here, never a snapshot.
type Player struct {
	ID        string    `dynamodbav:"PK" json:"id"`
	Name      string    `dynamodbav:"Name" json:"name"`
	Handicap  int       `dynamodbav:"Handicap" json:"handicap"`
	TeamID    int       `dynamodbav:"TeamID" json:"teamId"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

// TeamMember pins a player slot on a team. Handicaps are resolved through
// PlayerStorage at computation time; the name is kept for display only.
type TeamMember struct {
	PlayerID string `dynamodbav:"PlayerID" json:"playerId"`
	Name     string `dynamodbav:"Name" json:"name"`
}

// RotationRange maps a hole range to the team member slots (zero-based)
// whose scores count on those holes in the better-ball round. Only the
// three-person team carries a non-trivial rotation.
type RotationRange struct {
	FromHole int   `dynamodbav:"FromHole" json:"fromHole"`
	ToHole   int   `dynamodbav:"ToHole" json:"toHole"`
	Members  []int `dynamodbav:"Members" json:"members"`
}

type Team struct {
	ID                int          `dynamodbav:"PK" json:"id"`
	TeamNumber        int          `dynamodbav:"TeamNumber" json:"teamNumber"`
	Name              string       `dynamodbav:"Name" json:"name"`
	Members           []TeamMember `dynamodbav:"Members" json:"members"`
	IsThreePersonTeam bool         `dynamodbav:"IsThreePersonTeam" json:"isThreePersonTeam"`
	// TotalHandicap is informational only; the engine recomputes a blended
	// handicap per format and never reads this field.
	TotalHandicap int             `dynamodbav:"TotalHandicap" json:"totalHandicap"`
	PairRotation  []RotationRange `dynamodbav:"PairRotation,omitempty" json:"pairRotation,omitempty"`
}

// HoleScore is the atomic scoring fact: one row per (player, round, hole),
// upserted in place on edits. NetScore and Points are derived on every write
// and never hand-set.
type HoleScore struct {
	UserID              string    `dynamodbav:"PK" json:"userId"`
	SortKey             string    `dynamodbav:"SK" json:"-"` // r#<round>#h#<hole>
	TeamID              int       `dynamodbav:"TeamID" json:"teamId"`
	Round               int       `dynamodbav:"Round" json:"round"`
	Hole                int       `dynamodbav:"Hole" json:"hole"`
	Strokes             int       `dynamodbav:"Strokes" json:"strokes"`
	Par                 int       `dynamodbav:"Par" json:"par"`
	HandicapStrokeIndex int       `dynamodbav:"HandicapStrokeIndex" json:"handicapStrokeIndex"`
	NetScore            int       `dynamodbav:"NetScore" json:"netScore"`
	Points              int       `dynamodbav:"Points" json:"points"`
	FairwayHit          *bool     `dynamodbav:"FairwayHit,omitempty" json:"fairwayHit,omitempty"`
	GreenHit            *bool     `dynamodbav:"GreenHit,omitempty" json:"greenHit,omitempty"`
	Putts               *int      `dynamodbav:"Putts,omitempty" json:"putts,omitempty"`
	Penalties           *int      `dynamodbav:"Penalties,omitempty" json:"penalties,omitempty"`
	SandSave            *bool     `dynamodbav:"SandSave,omitempty" json:"sandSave,omitempty"`
	UpAndDown           *bool     `dynamodbav:"UpAndDown,omitempty" json:"upAndDown,omitempty"`
	UpdatedAt           time.Time `dynamodbav:"UpdatedAt" json:"updatedAt"`
}

// MatchPlayMatch is one 6-hole segment match between two players in a
// round-3 group. Stroke allocation is precomputed at setup time; the
// scoring engine only consults StrokeHoles.
type MatchPlayMatch struct {
	GroupNumber        int       `dynamodbav:"PK" json:"groupNumber"`
	SortKey            string    `dynamodbav:"SK" json:"-"` // seg#<segment>#<p1>#<p2>
	Player1ID          string    `dynamodbav:"Player1ID" json:"player1Id"`
	Player2ID          string    `dynamodbav:"Player2ID" json:"player2Id"`
	HoleSegment        string    `dynamodbav:"HoleSegment" json:"holeSegment"` // "1-6", "7-12", "13-18"
	HandicapDifference int       `dynamodbav:"HandicapDifference" json:"handicapDifference"`
	StrokesGiven       int       `dynamodbav:"StrokesGiven" json:"strokesGiven"`
	StrokeRecipientID  string    `dynamodbav:"StrokeRecipientID" json:"strokeRecipientId"`
	StrokeHoles        []int     `dynamodbav:"StrokeHoles" json:"strokeHoles"`
	WinnerID           string    `dynamodbav:"WinnerID,omitempty" json:"winnerId,omitempty"`
	Result             string    `dynamodbav:"Result,omitempty" json:"result,omitempty"`
	Points1            int       `dynamodbav:"Points1" json:"points1"`
	Points2            int       `dynamodbav:"Points2" json:"points2"`
	CreatedAt          time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}
