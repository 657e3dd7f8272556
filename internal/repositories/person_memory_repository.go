package repositories

import (
	"database/sql"
	"sync"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
)

// MemoryPersonRepository is the local-only backend: same surface as
// PersonRepository, backed by a map instead of a database. Used when
// STORAGE=memory and in tests.
type MemoryPersonRepository struct {
	mu     sync.RWMutex
	people map[string]*models.Person
	order  []string
}

func NewMemoryPersonRepository() *MemoryPersonRepository {
	return &MemoryPersonRepository{
		people: make(map[string]*models.Person),
	}
}

// Create inserts a new person
func (r *MemoryPersonRepository) Create(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[person.ID]; !ok {
		r.order = append(r.order, person.ID)
	}
	r.people[person.ID] = person.Clone()
	return nil
}

// GetByID retrieves a person by ID
func (r *MemoryPersonRepository) GetByID(id string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.people[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return person.Clone(), nil
}

// GetAll retrieves the complete collection in insertion order
func (r *MemoryPersonRepository) GetAll() ([]*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	people := make([]*models.Person, 0, len(r.order))
	for _, id := range r.order {
		people = append(people, r.people[id].Clone())
	}
	return people, nil
}

// Update replaces an existing person entirely
func (r *MemoryPersonRepository) Update(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[person.ID]; !ok {
		return sql.ErrNoRows
	}
	r.people[person.ID] = person.Clone()
	return nil
}

// Delete deletes a person by ID
func (r *MemoryPersonRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.people, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
