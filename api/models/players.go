package models

import (
	"github.com/NickyGee44/TheGambler-sub000/storage"
)

type PlayerCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Handicap *int   `json:"handicap"`
	TeamID   int    `json:"teamId"`
}

type PlayerUpdateRequest struct {
	Name     string `json:"name"`
	Handicap *int   `json:"handicap"`
	TeamID   *int   `json:"teamId"`
}

type PlayerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
	TeamID   int    `json:"teamId"`
}

func TransformPlayerFromStorage(p *storage.Player) PlayerResponse {
	return PlayerResponse{
		ID:       p.ID,
		Name:     p.Name,
		Handicap: p.Handicap,
		TeamID:   p.TeamID,
	}
}
