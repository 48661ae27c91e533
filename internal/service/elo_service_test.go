package service

import (
	"testing"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestELOService_GetKFactor(t *testing.T) {
	eloService := NewELOService()

	tests := []struct {
		name        string
		rankedGames int
		mode        models.Mode
		expectedK   float64
	}{
		{name: "New player duel", rankedGames: 0, mode: models.ModeDuel, expectedK: 30},
		{name: "Last provisional game", rankedGames: 19, mode: models.ModeDuel, expectedK: 30},
		{name: "First established game", rankedGames: 20, mode: models.ModeDuel, expectedK: 20},
		{name: "Veteran duel", rankedGames: 150, mode: models.ModeDuel, expectedK: 20},
		{name: "New player deathmatch", rankedGames: 3, mode: models.ModeDeathmatch, expectedK: 35},
		{name: "Veteran deathmatch", rankedGames: 40, mode: models.ModeDeathmatch, expectedK: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualK := eloService.GetKFactor(tt.rankedGames, tt.mode)
			if actualK != tt.expectedK {
				t.Errorf("GetKFactor(%d, %s) = %v, want %v", tt.rankedGames, tt.mode, actualK, tt.expectedK)
			}
		})
	}
}

func TestELOService_EqualNewPlayersDuel(t *testing.T) {
	eloService := NewELOService()

	winner := &models.RatingRecord{Name: "player1", ELO: 1300}
	loser := &models.RatingRecord{Name: "player2", ELO: 1300}

	w, l := eloService.CalculateNewRatings(winner, loser, models.ModeDuel)

	assert.Equal(t, 1315, w.NewRating)
	assert.Equal(t, 1285, l.NewRating)
	assert.Equal(t, 15, w.Change)
	assert.Equal(t, -15, l.Change)
}

func TestELOService_CalculateNewRatings(t *testing.T) {
	eloService := NewELOService()

	tests := []struct {
		name           string
		winnerELO      int
		loserELO       int
		winnerGames    int
		loserGames     int
		mode           models.Mode
		expectedWinner int
		expectedLoser  int
	}{
		{
			name:      "Underdog wins",
			winnerELO: 1200, loserELO: 1400,
			winnerGames: 30, loserGames: 30,
			mode:           models.ModeDuel,
			expectedWinner: 1215, // 1200 + 20*(1-0.2402)
			expectedLoser:  1385,
		},
		{
			name:      "Favourite wins",
			winnerELO: 1400, loserELO: 1200,
			winnerGames: 30, loserGames: 30,
			mode:           models.ModeDuel,
			expectedWinner: 1405, // 1400 + 20*(1-0.7597)
			expectedLoser:  1195,
		},
		{
			name:      "New player beats veteran in a deathmatch",
			winnerELO: 1300, loserELO: 1300,
			winnerGames: 2, loserGames: 50,
			mode:           models.ModeDeathmatch,
			expectedWinner: 1318, // K=35
			expectedLoser:  1288, // K=25, 1300 - 12.5 rounds away from zero
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner := &models.RatingRecord{Name: "w", ELO: tt.winnerELO, Matches: tt.winnerGames}
			loser := &models.RatingRecord{Name: "l", ELO: tt.loserELO, Matches: tt.loserGames}

			w, l := eloService.CalculateNewRatings(winner, loser, tt.mode)

			assert.Equal(t, tt.expectedWinner, w.NewRating)
			assert.Equal(t, tt.expectedLoser, l.NewRating)
			assert.Equal(t, w.NewRating-tt.winnerELO, w.Change)

			t.Logf("%s: winner %d→%d (K=%d), loser %d→%d (K=%d)",
				tt.name, w.OldRating, w.NewRating, w.KFactor, l.OldRating, l.NewRating, l.KFactor)
		})
	}
}

func TestELOService_ZeroSumWithMatchingK(t *testing.T) {
	eloService := NewELOService()

	for _, gap := range []int{0, 50, 150, 400} {
		winner := &models.RatingRecord{ELO: 1300 + gap, Matches: 25}
		loser := &models.RatingRecord{ELO: 1300, Matches: 25}

		w, l := eloService.CalculateNewRatings(winner, loser, models.ModeDuel)

		// rounding can leave at most one point on the table
		sum := w.Change + l.Change
		assert.LessOrEqual(t, sum, 1, "gap %d", gap)
		assert.GreaterOrEqual(t, sum, -1, "gap %d", gap)
		assert.GreaterOrEqual(t, w.Change, 0, "winner never loses rating, gap %d", gap)
	}
}

func TestELOService_ExpectedScoreIsSymmetric(t *testing.T) {
	eloService := NewELOService()

	e1 := eloService.ExpectedScore(1450, 1300)
	e2 := eloService.ExpectedScore(1300, 1450)

	assert.InDelta(t, 1.0, e1+e2, 1e-9)
	assert.Greater(t, e1, 0.5)
}
