package models

import (
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

type TeamMemberEntry struct {
	PlayerID string `json:"playerId" binding:"required"`
	Name     string `json:"name"`
}

type RotationRangeEntry struct {
	FromHole int   `json:"fromHole"`
	ToHole   int   `json:"toHole"`
	Members  []int `json:"members"`
}

type TeamCreateRequest struct {
	ID                int                  `json:"id" binding:"required"`
	TeamNumber        int                  `json:"teamNumber"`
	Name              string               `json:"name" binding:"required"`
	Members           []TeamMemberEntry    `json:"members" binding:"required"`
	IsThreePersonTeam bool                 `json:"isThreePersonTeam"`
	TotalHandicap     int                  `json:"totalHandicap"`
	PairRotation      []RotationRangeEntry `json:"pairRotation"`
}

type TeamUpdateRequest struct {
	TeamNumber        int                  `json:"teamNumber"`
	Name              string               `json:"name"`
	Members           []TeamMemberEntry    `json:"members"`
	IsThreePersonTeam bool                 `json:"isThreePersonTeam"`
	TotalHandicap     int                  `json:"totalHandicap"`
	PairRotation      []RotationRangeEntry `json:"pairRotation"`
}

type TeamResponse struct {
	ID                int               `json:"id"`
	TeamNumber        int               `json:"teamNumber"`
	Name              string            `json:"name"`
	Members           []TeamMemberEntry `json:"members"`
	IsThreePersonTeam bool              `json:"isThreePersonTeam"`
	TotalHandicap     int               `json:"totalHandicap"`
}

type TeamHandicapResponse struct {
	TeamID       int `json:"teamId"`
	TeamHandicap int `json:"teamHandicap"`
}

func TransformRotation(entries []RotationRangeEntry) []storage.RotationRange {
	if len(entries) == 0 {
		return nil
	}
	rotation := make([]storage.RotationRange, 0, len(entries))
	for _, e := range entries {
		rotation = append(rotation, storage.RotationRange{
			FromHole: e.FromHole,
			ToHole:   e.ToHole,
			Members:  e.Members,
		})
	}
	return rotation
}

func TransformMembers(entries []TeamMemberEntry) []storage.TeamMember {
	members := make([]storage.TeamMember, 0, len(entries))
	for _, e := range entries {
		members = append(members, storage.TeamMember{PlayerID: e.PlayerID, Name: e.Name})
	}
	return members
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	members := make([]TeamMemberEntry, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, TeamMemberEntry{PlayerID: m.PlayerID, Name: m.Name})
	}
	return TeamResponse{
		ID:                t.ID,
		TeamNumber:        t.TeamNumber,
		Name:              t.Name,
		Members:           members,
		IsThreePersonTeam: t.IsThreePersonTeam,
		TotalHandicap:     t.TotalHandicap,
	}
}
