package service

import (
	"math"

	"github.com/Polsaker/dongerdong/internal/models"
)

// ELOService computes rating changes for ranked (1v1) matches.
type ELOService struct {
	provisionalGames   int     // ranked games below which a player is provisional
	provisionalKFactor float64
	establishedKFactor float64
	deathmatchBonus    float64
}

func NewELOService() *ELOService {
	return &ELOService{
		provisionalGames:   20,
		provisionalKFactor: 30,
		establishedKFactor: 20,
		deathmatchBonus:    5,
	}
}

// GetKFactor returns the K-factor for a player with rankedGames
// matches+deathmatches already played:
// - fewer than 20 games: K=30
// - otherwise K=20
// Deathmatches raise the stakes by +5 for both players.
func (s *ELOService) GetKFactor(rankedGames int, mode models.Mode) float64 {
	k := s.establishedKFactor
	if rankedGames < s.provisionalGames {
		k = s.provisionalKFactor
	}
	if mode == models.ModeDeathmatch {
		k += s.deathmatchBonus
	}
	return k
}

// ExpectedScore is the logistic win expectancy of a rating against another:
// r = 10^(rating/400), expected = r_self / (r_self + r_opponent).
func (s *ELOService) ExpectedScore(rating, opponent int) float64 {
	r1 := math.Pow(10, float64(rating)/400.0)
	r2 := math.Pow(10, float64(opponent)/400.0)
	return r1 / (r1 + r2)
}

// RatingChange is the outcome of one ELO update for one player.
type RatingChange struct {
	Name      string `json:"name"`
	OldRating int    `json:"oldRating"`
	NewRating int    `json:"newRating"`
	Change    int    `json:"change"`
	KFactor   int    `json:"kFactor"`
}

// CalculateNewRatings updates winner and loser simultaneously from the
// pre-match snapshot of both records.
func (s *ELOService) CalculateNewRatings(winner, loser *models.RatingRecord, mode models.Mode) (RatingChange, RatingChange) {
	expectedWinner := s.ExpectedScore(winner.ELO, loser.ELO)
	expectedLoser := s.ExpectedScore(loser.ELO, winner.ELO)

	kWinner := s.GetKFactor(winner.RankedGames(), mode)
	kLoser := s.GetKFactor(loser.RankedGames(), mode)

	newWinner := int(math.Round(float64(winner.ELO) + kWinner*(1.0-expectedWinner)))
	newLoser := int(math.Round(float64(loser.ELO) + kLoser*(0.0-expectedLoser)))

	return RatingChange{
			Name:      winner.Name,
			OldRating: winner.ELO,
			NewRating: newWinner,
			Change:    newWinner - winner.ELO,
			KFactor:   int(kWinner),
		}, RatingChange{
			Name:      loser.Name,
			OldRating: loser.ELO,
			NewRating: newLoser,
			Change:    newLoser - loser.ELO,
			KFactor:   int(kLoser),
		}
}
