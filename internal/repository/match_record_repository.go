package repository

import (
	"fmt"

	"github.com/Polsaker/dongerdong/internal/models"
)

// SaveMatchRecord persists a ranked box score once, at match end
func (r *PostgresRatingStore) SaveMatchRecord(record *models.MatchRecord) error {
	query := `
		INSERT INTO match_records (
			id, mode, player1, player2, turns, winner,
			player1_hits, player2_hits,
			player1_heals, player2_heals,
			player1_crits, player2_crits,
			player1_total_damage, player2_total_damage,
			player1_total_healing, player2_total_healing,
			player1_praise, player2_praise,
			player1_praise_roll, player2_praise_roll,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	p1, p2 := record.Player1, record.Player2
	_, err := r.db.Exec(query,
		record.ID,
		string(record.Mode),
		p1.Name,
		p2.Name,
		record.Turns,
		record.Winner,
		p1.Hits, p2.Hits,
		p1.Heals, p2.Heals,
		p1.Crits, p2.Crits,
		p1.TotalDamage, p2.TotalDamage,
		p1.TotalHealing, p2.TotalHealing,
		int(p1.Praise), int(p2.Praise),
		p1.PraiseRoll, p2.PraiseRoll,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match record: %w", err)
	}

	return nil
}
