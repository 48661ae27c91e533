package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
)

// MemoryRatingStore is the RatingStore used when no database is configured
// and in tests. A single mutex gives the per-player atomicity.
type MemoryRatingStore struct {
	mu      sync.Mutex
	records map[string]*models.RatingRecord
	matches []*models.MatchRecord
	now     func() time.Time
}

func NewMemoryRatingStore() *MemoryRatingStore {
	return &MemoryRatingStore{
		records: make(map[string]*models.RatingRecord),
		now:     time.Now,
	}
}

func (s *MemoryRatingStore) lookup(name string) *models.RatingRecord {
	key := models.NormalizeID(name)
	record, ok := s.records[key]
	if !ok {
		record = models.NewRatingRecord(name, s.now())
		s.records[key] = record
	}
	return record
}

func (s *MemoryRatingStore) GetOrCreate(name string) (*models.RatingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *s.lookup(name)
	return &copied, nil
}

func (s *MemoryRatingStore) FindByName(name string) (*models.RatingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[models.NormalizeID(name)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (s *MemoryRatingStore) IncrementCounter(name string, counter models.Counter, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.lookup(name)
	if !record.Add(counter, amount) {
		return fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}
	record.LastPlayed = s.now()
	return nil
}

func (s *MemoryRatingStore) SetRating(name string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.lookup(name)
	record.ELO = rating
	record.LastPlayed = s.now()
	return nil
}

func (s *MemoryRatingStore) TopN(n int, ascending bool) ([]*models.RatingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var eligible []*models.RatingRecord
	for _, record := range s.records {
		if record.RankedGames() >= models.RankedThreshold {
			copied := *record
			eligible = append(eligible, &copied)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.ELO != b.ELO {
			if ascending {
				return a.ELO < b.ELO
			}
			return a.ELO > b.ELO
		}
		return a.Name < b.Name
	})

	if n >= 0 && len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible, nil
}

func (s *MemoryRatingStore) SaveMatchRecord(record *models.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.matches = append(s.matches, &copied)
	return nil
}

// MatchRecords returns the saved box scores in insertion order.
func (s *MemoryRatingStore) MatchRecords() []*models.MatchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.MatchRecord(nil), s.matches...)
}
