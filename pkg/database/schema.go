package database

import "fmt"

// player names are unique regardless of case, mirroring how the room
// resolves identities.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS player_stats (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		turns         INTEGER NOT NULL DEFAULT 0,
		hits          INTEGER NOT NULL DEFAULT 0,
		heals         INTEGER NOT NULL DEFAULT 0,
		praises       INTEGER NOT NULL DEFAULT 0,
		total_damage  INTEGER NOT NULL DEFAULT 0,
		total_healing INTEGER NOT NULL DEFAULT 0,
		crits         INTEGER NOT NULL DEFAULT 0,
		elo           INTEGER NOT NULL DEFAULT 1300,
		matches       INTEGER NOT NULL DEFAULT 0,
		deathmatches  INTEGER NOT NULL DEFAULT 0,
		wins          INTEGER NOT NULL DEFAULT 0,
		losses        INTEGER NOT NULL DEFAULT 0,
		quits         INTEGER NOT NULL DEFAULT 0,
		idle_outs     INTEGER NOT NULL DEFAULT 0,
		first_played  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_played   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS player_stats_name_unique ON player_stats (lower(name))`,
	`CREATE TABLE IF NOT EXISTS match_records (
		id                    UUID PRIMARY KEY,
		mode                  TEXT NOT NULL,
		player1               TEXT NOT NULL,
		player2               TEXT NOT NULL,
		turns                 INTEGER NOT NULL DEFAULT 0,
		winner                SMALLINT NOT NULL DEFAULT 0,
		player1_hits          INTEGER NOT NULL DEFAULT 0,
		player2_hits          INTEGER NOT NULL DEFAULT 0,
		player1_heals         INTEGER NOT NULL DEFAULT 0,
		player2_heals         INTEGER NOT NULL DEFAULT 0,
		player1_crits         INTEGER NOT NULL DEFAULT 0,
		player2_crits         INTEGER NOT NULL DEFAULT 0,
		player1_total_damage  INTEGER NOT NULL DEFAULT 0,
		player2_total_damage  INTEGER NOT NULL DEFAULT 0,
		player1_total_healing INTEGER NOT NULL DEFAULT 0,
		player2_total_healing INTEGER NOT NULL DEFAULT 0,
		player1_praise        SMALLINT NOT NULL DEFAULT 0,
		player2_praise        SMALLINT NOT NULL DEFAULT 0,
		player1_praise_roll   INTEGER NOT NULL DEFAULT 0,
		player2_praise_roll   INTEGER NOT NULL DEFAULT 0,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS match_records_players ON match_records (lower(player1), lower(player2))`,
}

// Migrate creates the tables the rating store needs. Safe to run on every start.
func Migrate(db *DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
