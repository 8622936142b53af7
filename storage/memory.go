package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// In-memory implementations of the storage interfaces, used in local mode
// and by the test suites. Reads return copies so callers cannot mutate the
// stored rows.

type MemoryPlayerStorage struct {
	mu      sync.RWMutex
	players map[string]*Player
}

func NewMemoryPlayerStorage() *MemoryPlayerStorage {
	return &MemoryPlayerStorage{players: make(map[string]*Player)}
}

func (s *MemoryPlayerStorage) Get(_ context.Context, id string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *MemoryPlayerStorage) GetAll(_ context.Context) ([]*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		copied := *p
		players = append(players, &copied)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *MemoryPlayerStorage) Create(_ context.Context, player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.players[player.ID]; exists {
		return ErrItemWithIDAlreadyExists
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *MemoryPlayerStorage) Update(_ context.Context, player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *MemoryPlayerStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

type MemoryTeamStorage struct {
	mu    sync.RWMutex
	teams map[int]*Team
}

func NewMemoryTeamStorage() *MemoryTeamStorage {
	return &MemoryTeamStorage{teams: make(map[int]*Team)}
}

func (s *MemoryTeamStorage) Get(_ context.Context, id int) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *t
	copied.Members = append([]TeamMember(nil), t.Members...)
	copied.PairRotation = append([]RotationRange(nil), t.PairRotation...)
	return &copied, nil
}

func (s *MemoryTeamStorage) GetAll(_ context.Context) ([]*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*Team, 0, len(s.teams))
	for _, t := range s.teams {
		copied := *t
		copied.Members = append([]TeamMember(nil), t.Members...)
		copied.PairRotation = append([]RotationRange(nil), t.PairRotation...)
		teams = append(teams, &copied)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (s *MemoryTeamStorage) Create(_ context.Context, team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.teams[team.ID]; exists {
		return ErrItemWithIDAlreadyExists
	}
	copied := *team
	s.teams[team.ID] = &copied
	return nil
}

func (s *MemoryTeamStorage) Update(_ context.Context, team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *team
	s.teams[team.ID] = &copied
	return nil
}

func (s *MemoryTeamStorage) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
	return nil
}

type MemoryHoleScoreStorage struct {
	mu     sync.RWMutex
	scores map[string]*HoleScore // userID + "|" + sort key
}

func NewMemoryHoleScoreStorage() *MemoryHoleScoreStorage {
	return &MemoryHoleScoreStorage{scores: make(map[string]*HoleScore)}
}

func (s *MemoryHoleScoreStorage) key(userID string, round, hole int) string {
	return userID + "|" + ScoreSortKey(round, hole)
}

func (s *MemoryHoleScoreStorage) Put(_ context.Context, score *HoleScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	score.SortKey = ScoreSortKey(score.Round, score.Hole)
	score.UpdatedAt = time.Now().UTC()
	copied := *score
	s.scores[s.key(score.UserID, score.Round, score.Hole)] = &copied
	return nil
}

func (s *MemoryHoleScoreStorage) Get(_ context.Context, userID string, round, hole int) (*HoleScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scores[s.key(userID, round, hole)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sc
	return &copied, nil
}

func (s *MemoryHoleScoreStorage) GetByPlayerRound(_ context.Context, userID string, round int) ([]*HoleScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var scores []*HoleScore
	for _, sc := range s.scores {
		if sc.UserID == userID && sc.Round == round {
			copied := *sc
			scores = append(scores, &copied)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Hole < scores[j].Hole })
	return scores, nil
}

func (s *MemoryHoleScoreStorage) GetByTeamRound(_ context.Context, teamID, round int) ([]*HoleScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var scores []*HoleScore
	for _, sc := range s.scores {
		if sc.TeamID == teamID && sc.Round == round {
			copied := *sc
			scores = append(scores, &copied)
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Hole != scores[j].Hole {
			return scores[i].Hole < scores[j].Hole
		}
		return scores[i].UserID < scores[j].UserID
	})
	return scores, nil
}

func (s *MemoryHoleScoreStorage) GetAll(_ context.Context) ([]*HoleScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]*HoleScore, 0, len(s.scores))
	for _, sc := range s.scores {
		copied := *sc
		scores = append(scores, &copied)
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].UserID != scores[j].UserID {
			return scores[i].UserID < scores[j].UserID
		}
		return scores[i].SortKey < scores[j].SortKey
	})
	return scores, nil
}

type MemoryMatchStorage struct {
	mu      sync.RWMutex
	matches map[string]*MatchPlayMatch // group + "|" + sort key
}

func NewMemoryMatchStorage() *MemoryMatchStorage {
	return &MemoryMatchStorage{matches: make(map[string]*MatchPlayMatch)}
}

func (s *MemoryMatchStorage) Put(_ context.Context, match *MatchPlayMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match.SortKey = MatchSortKey(match.HoleSegment, match.Player1ID, match.Player2ID)
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}
	copied := *match
	copied.StrokeHoles = append([]int(nil), match.StrokeHoles...)
	key := fmt.Sprintf("%d|%s", match.GroupNumber, match.SortKey)
	s.matches[key] = &copied
	return nil
}

func (s *MemoryMatchStorage) GetByGroup(_ context.Context, groupNumber int) ([]*MatchPlayMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []*MatchPlayMatch
	for _, m := range s.matches {
		if m.GroupNumber == groupNumber {
			copied := *m
			copied.StrokeHoles = append([]int(nil), m.StrokeHoles...)
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].SortKey < matches[j].SortKey })
	return matches, nil
}

func (s *MemoryMatchStorage) GetByPlayer(_ context.Context, playerID string) ([]*MatchPlayMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []*MatchPlayMatch
	for _, m := range s.matches {
		if m.Player1ID == playerID || m.Player2ID == playerID {
			copied := *m
			copied.StrokeHoles = append([]int(nil), m.StrokeHoles...)
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].SortKey < matches[j].SortKey })
	return matches, nil
}

func (s *MemoryMatchStorage) GetAll(_ context.Context) ([]*MatchPlayMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]*MatchPlayMatch, 0, len(s.matches))
	for _, m := range s.matches {
		copied := *m
		copied.StrokeHoles = append([]int(nil), m.StrokeHoles...)
		matches = append(matches, &copied)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].GroupNumber != matches[j].GroupNumber {
			return matches[i].GroupNumber < matches[j].GroupNumber
		}
		return matches[i].SortKey < matches[j].SortKey
	})
	return matches, nil
}
