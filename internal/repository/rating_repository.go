package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/Polsaker/dongerdong/pkg/database"
)

const ratingColumns = `name, turns, hits, heals, praises, total_damage, total_healing, crits,
	elo, matches, deathmatches, wins, losses, quits, idle_outs, first_played, last_played`

// PostgresRatingStore keeps ratings in the player_stats and match_records tables.
type PostgresRatingStore struct {
	db *database.DB
}

func NewPostgresRatingStore(db *database.DB) *PostgresRatingStore {
	return &PostgresRatingStore{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRating(row rowScanner) (*models.RatingRecord, error) {
	r := &models.RatingRecord{}
	err := row.Scan(
		&r.Name,
		&r.Turns,
		&r.Hits,
		&r.Heals,
		&r.Praises,
		&r.TotalDamage,
		&r.TotalHealing,
		&r.Crits,
		&r.ELO,
		&r.Matches,
		&r.Deathmatches,
		&r.Wins,
		&r.Losses,
		&r.Quits,
		&r.IdleOuts,
		&r.FirstPlayed,
		&r.LastPlayed,
	)
	return r, err
}

// GetOrCreate retrieves a player's record or inserts a default one
func (r *PostgresRatingStore) GetOrCreate(name string) (*models.RatingRecord, error) {
	// the no-op update makes RETURNING yield the existing row on conflict
	query := `
		INSERT INTO player_stats (name)
		VALUES ($1)
		ON CONFLICT ((lower(name))) DO UPDATE SET name = player_stats.name
		RETURNING ` + ratingColumns

	record, err := scanRating(r.db.QueryRow(query, name))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player stats: %w", err)
	}

	return record, nil
}

// FindByName looks a player up case-insensitively
func (r *PostgresRatingStore) FindByName(name string) (*models.RatingRecord, error) {
	query := `SELECT ` + ratingColumns + ` FROM player_stats WHERE lower(name) = lower($1)`

	record, err := scanRating(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player stats: %w", err)
	}

	return record, nil
}

// IncrementCounter adds amount to one counter in a single upsert
// NOTE: the column name comes from the models.Counters whitelist, never from input
func (r *PostgresRatingStore) IncrementCounter(name string, counter models.Counter, amount int) error {
	if !counter.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}

	column := string(counter)
	now := time.Now().UTC()

	query := fmt.Sprintf(`
		INSERT INTO player_stats (name, %[1]s, last_played)
		VALUES ($1, $2, $3)
		ON CONFLICT ((lower(name))) DO UPDATE
		SET %[1]s = player_stats.%[1]s + EXCLUDED.%[1]s,
		    last_played = EXCLUDED.last_played
	`, column)

	if _, err := r.db.Exec(query, name, amount, now); err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}

	return nil
}

// SetRating stores a new ELO rating
func (r *PostgresRatingStore) SetRating(name string, rating int) error {
	query := `
		INSERT INTO player_stats (name, elo, last_played)
		VALUES ($1, $2, $3)
		ON CONFLICT ((lower(name))) DO UPDATE
		SET elo = EXCLUDED.elo,
		    last_played = EXCLUDED.last_played
	`

	if _, err := r.db.Exec(query, name, rating, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set rating: %w", err)
	}

	return nil
}

// TopN returns the leaderboard, best first unless ascending
func (r *PostgresRatingStore) TopN(n int, ascending bool) ([]*models.RatingRecord, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	query := `
		SELECT ` + ratingColumns + `
		FROM player_stats
		WHERE matches + deathmatches >= $1
		ORDER BY elo ` + order + `, name ASC
		LIMIT $2
	`

	// LIMIT NULL is no limit
	var limit interface{}
	if n >= 0 {
		limit = n
	}

	rows, err := r.db.Query(query, models.RankedThreshold, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var records []*models.RatingRecord
	for rows.Next() {
		record, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return records, nil
}
