// Package seed fills the storage layer with a demo tournament so the API can
// be exercised without real registration data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/NickyGee44/TheGambler-sub000/scoring"
	"github.com/NickyGee44/TheGambler-sub000/storage"
	"github.com/brianvoe/gofakeit/v6"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Result struct {
	Players int
	Teams   int
}

// Tournament seeds seven two-man teams and one three-man team, the usual
// field for this event. Existing records with the same IDs are left alone.
func Tournament(ctx context.Context, players storage.PlayerStorage, teams storage.TeamStorage) (*Result, error) {
	faker := gofakeit.New(0)
	result := &Result{}

	for teamNumber := 1; teamNumber <= 8; teamNumber++ {
		size := 2
		if teamNumber == 8 {
			size = 3
		}

		members := make([]storage.TeamMember, 0, size)
		for i := 0; i < size; i++ {
			id, err := gonanoid.Generate(idAlphabet, 5)
			if err != nil {
				return nil, fmt.Errorf("seed: generate player id: %w", err)
			}
			player := &storage.Player{
				ID:        id,
				Name:      faker.Name(),
				Handicap:  faker.Number(4, 28),
				TeamID:    teamNumber,
				CreatedAt: time.Now().UTC(),
			}
			if err := players.Create(ctx, player); err != nil {
				if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
					continue
				}
				return nil, fmt.Errorf("seed: create player: %w", err)
			}
			members = append(members, storage.TeamMember{PlayerID: player.ID, Name: player.Name})
			result.Players++
		}

		team := &storage.Team{
			ID:                teamNumber,
			TeamNumber:        teamNumber,
			Name:              fmt.Sprintf("%s %s", faker.AdjectiveDescriptive(), faker.Animal()),
			Members:           members,
			IsThreePersonTeam: size == 3,
		}
		if size == 3 {
			team.PairRotation = scoring.DefaultThreeManRotation()
		}
		if err := teams.Create(ctx, team); err != nil {
			if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
				logging.Log.Warnf("SEED: skipped existing team %d", teamNumber)
				continue
			}
			return nil, fmt.Errorf("seed: create team: %w", err)
		}
		result.Teams++
	}

	logging.Log.Infof("SEED: created %d players and %d teams", result.Players, result.Teams)
	return result, nil
}
