// Package corpus loads and holds the startup corpus: an immutable in-memory
// snapshot swapped wholesale on reload, never mutated in place.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/models"
)

// Snapshot is one immutable generation of the corpus. Searches capture a
// snapshot at request start, so a reload racing with an in-flight search is
// harmless.
type Snapshot struct {
	Records []*models.StartupRecord
}

// Store owns the current corpus snapshot. All reads go through Snapshot();
// the only writer is Load/Replace, which swaps the whole generation
// atomically.
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]
	logger  *zap.Logger
}

// NewStore creates a store bound to a corpus file path. The store starts
// empty; call Load to populate it.
func NewStore(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.current.Store(&Snapshot{})
	return s
}

// Load reads the corpus file and swaps in a fresh snapshot. A missing or
// unreadable file leaves the store empty rather than failing: searches over
// an empty corpus return empty results, which is the designed degradation.
// Malformed array elements are skipped individually so one bad record cannot
// poison the whole load.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Warn("corpus file unreadable, continuing with empty corpus",
			zap.String("path", s.path), zap.Error(err))
		s.current.Store(&Snapshot{})
		return nil
	}

	records, skipped, err := decodeRecords(data)
	if err != nil {
		s.logger.Warn("corpus file unparseable, continuing with empty corpus",
			zap.String("path", s.path), zap.Error(err))
		s.current.Store(&Snapshot{})
		return nil
	}

	s.current.Store(&Snapshot{Records: records})
	s.logger.Info("corpus loaded",
		zap.String("path", s.path),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return nil
}

// decodeRecords parses a JSON array element by element. Elements that fail to
// decode or fail validation are counted and skipped.
func decodeRecords(data []byte) ([]*models.StartupRecord, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("corpus is not a JSON array: %w", err)
	}

	records := make([]*models.StartupRecord, 0, len(raw))
	skipped := 0
	for _, elem := range raw {
		var rec models.StartupRecord
		if err := json.Unmarshal(elem, &rec); err != nil || !rec.Valid() {
			skipped++
			continue
		}
		records = append(records, &rec)
	}
	return records, skipped, nil
}

// Replace swaps in an explicit record set. Used by tests and by callers that
// source records from somewhere other than the bound file.
func (s *Store) Replace(records []*models.StartupRecord) {
	s.current.Store(&Snapshot{Records: records})
}

// Snapshot returns the current corpus generation.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Len reports how many records the current snapshot holds.
func (s *Store) Len() int {
	return len(s.current.Load().Records)
}

// Path returns the corpus file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Categories returns the sorted distinct category labels across the current
// snapshot, with record counts.
func (s *Store) Categories() map[string]int {
	counts := make(map[string]int)
	for _, rec := range s.current.Load().Records {
		for _, cat := range rec.Categories {
			cat = strings.TrimSpace(cat)
			if cat != "" {
				counts[cat]++
			}
		}
	}
	return counts
}

// CategoryNames returns the sorted distinct category labels.
func (s *Store) CategoryNames() []string {
	counts := s.Categories()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
