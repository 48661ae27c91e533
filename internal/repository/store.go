package repository

import (
	"errors"

	"github.com/Polsaker/dongerdong/internal/models"
)

var ErrUnknownCounter = errors.New("unknown counter")

// RatingStore is the durable per-player statistics store. Every method
// is atomic per player name; callers never read-modify-write a record.
type RatingStore interface {
	// GetOrCreate returns the record for name, creating a default one.
	GetOrCreate(name string) (*models.RatingRecord, error)
	// FindByName returns nil, nil when the player has no record.
	FindByName(name string) (*models.RatingRecord, error)
	IncrementCounter(name string, counter models.Counter, amount int) error
	SetRating(name string, rating int) error
	// TopN orders players with at least RankedThreshold ranked games by ELO.
	// A negative n returns every eligible player.
	TopN(n int, ascending bool) ([]*models.RatingRecord, error)
	SaveMatchRecord(record *models.MatchRecord) error
}

var (
	_ RatingStore = (*PostgresRatingStore)(nil)
	_ RatingStore = (*MemoryRatingStore)(nil)
)
