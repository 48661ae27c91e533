package service

import (
	"fmt"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/Polsaker/dongerdong/internal/repository"
)

const (
	DefaultLeaderboardLimit = 5
	MaxLeaderboardLimit     = 100
)

// PlayerSummary is a player's record with its leaderboard position.
type PlayerSummary struct {
	Record  *models.RatingRecord `json:"record"`
	Rank    int                  `json:"rank"` // 1-based, 0 when not ranked
	Balance int                  `json:"balance"`
}

type StatsService struct {
	store repository.RatingStore
}

func NewStatsService(store repository.RatingStore) *StatsService {
	return &StatsService{store: store}
}

// Summary looks a player up case-insensitively.
func (s *StatsService) Summary(name string) (*PlayerSummary, error) {
	record, err := s.store.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	if record == nil {
		return nil, ErrPlayerNotFound
	}

	ranked, err := s.store.TopN(-1, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}

	rank := 0
	for i, r := range ranked {
		if models.SameID(r.Name, record.Name) {
			rank = i + 1
			break
		}
	}

	return &PlayerSummary{
		Record:  record,
		Rank:    rank,
		Balance: record.Balance(),
	}, nil
}

// Leaderboard returns the best players, or the worst when bottom is set.
func (s *StatsService) Leaderboard(limit int, bottom bool) ([]*models.RatingRecord, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf("%w: limit above %d", ErrInvalidInput, MaxLeaderboardLimit)
	}

	records, err := s.store.TopN(limit, bottom)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return records, nil
}
