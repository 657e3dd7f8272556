package genealogy

import (
	"sort"
	"sync"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
	"github.com/google/uuid"
)

// Store holds the canonical id → Person mapping. All mutations go
// through Load and Upsert; nothing else writes to the mapping.
//
// The store imposes no acyclicity constraint on parent references.
// Dangling references are tolerated here and dropped at projection.
type Store struct {
	mu     sync.RWMutex
	people map[string]*models.Person
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		people: make(map[string]*models.Person),
	}
}

// Load replaces the entire mapping with the given records, keyed by ID.
// This is a full snapshot replace, not a merge.
func (s *Store) Load(records []*models.Person) {
	people := make(map[string]*models.Person, len(records))
	for _, record := range records {
		people[record.ID] = record
	}

	s.mu.Lock()
	s.people = people
	s.mu.Unlock()
}

// Upsert stores the record, fully replacing any existing entry with the
// same ID. When the ID is empty or unrecognized a fresh UUID is assigned.
// Returns the effective ID of the stored record.
func (s *Store) Upsert(record *models.Person) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	} else if _, ok := s.people[record.ID]; !ok {
		record.ID = uuid.New().String()
	}

	s.people[record.ID] = record
	return record.ID
}

// Get looks up a person by ID
func (s *Store) Get(id string) (*models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	person, ok := s.people[id]
	return person, ok
}

// All returns a snapshot of the current records, sorted by ID so that
// projection output is stable for a fixed snapshot.
func (s *Store) All() []*models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	people := make([]*models.Person, 0, len(s.people))
	for _, person := range s.people {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].ID < people[j].ID
	})

	return people
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.people)
}
