package services

import (
	"errors"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/genealogy"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/logger"
	"github.com/google/uuid"
)

// PersonBackend is the row store behind the tree service. The SQLite
// repository is the remote-persisted variant; the memory repository is
// the local one. The service never reads the backend directly between
// writes, it always reloads the full collection.
type PersonBackend interface {
	GetAll() ([]*models.Person, error)
	Create(person *models.Person) error
	Update(person *models.Person) error
	Delete(id string) error
}

// TreeService owns the data flow backend → store → projector → renderer.
// Every successful mutation reloads the store from the backend and
// re-projects; a failed backend write leaves the in-memory snapshot
// exactly as it was.
type TreeService struct {
	backend  PersonBackend
	store    *genealogy.Store
	renderer Renderer
}

func NewTreeService(backend PersonBackend, store *genealogy.Store, renderer Renderer) *TreeService {
	return &TreeService{
		backend:  backend,
		store:    store,
		renderer: renderer,
	}
}

// Load fetches the complete collection from the backend, replaces the
// in-memory snapshot and re-projects. On backend failure the prior
// snapshot stays untouched.
func (s *TreeService) Load() error {
	records, err := s.backend.GetAll()
	if err != nil {
		return err
	}

	s.store.Load(records)
	s.project()
	return nil
}

// Upsert commits the record to the backend, then reloads and
// re-projects. A record whose ID is empty or not present in the current
// snapshot is inserted under a fresh UUID; a known ID is a full-row
// replacement. Returns the effective ID.
func (s *TreeService) Upsert(person *models.Person) (string, error) {
	if person == nil {
		return "", errors.New("person is required")
	}

	if _, known := s.store.Get(person.ID); known {
		if err := s.backend.Update(person); err != nil {
			return "", err
		}
	} else {
		person.ID = uuid.New().String()
		if err := s.backend.Create(person); err != nil {
			return "", err
		}
	}

	if err := s.Load(); err != nil {
		return "", err
	}
	return person.ID, nil
}

// Delete removes the record from the backend, then reloads and
// re-projects
func (s *TreeService) Delete(id string) error {
	if id == "" {
		return errors.New("person ID is required")
	}
	if _, known := s.store.Get(id); !known {
		return errors.New("person not found")
	}

	if err := s.backend.Delete(id); err != nil {
		return err
	}
	return s.Load()
}

// Get retrieves a single person from the current snapshot
func (s *TreeService) Get(id string) (*models.Person, error) {
	if id == "" {
		return nil, errors.New("person ID is required")
	}

	person, ok := s.store.Get(id)
	if !ok {
		return nil, errors.New("person not found")
	}
	return person, nil
}

// All returns the current snapshot
func (s *TreeService) All() []*models.Person {
	return s.store.All()
}

// project rebuilds the graph definition and hands it to the renderer.
// Skipped while the store is empty. Render failures are logged and
// never propagate; the renderer keeps its previous definition.
func (s *TreeService) project() {
	if s.store.Len() == 0 {
		return
	}

	definition := genealogy.BuildDefinition(s.store.All())
	if err := s.renderer.Render(definition); err != nil {
		logger.WithError(err).Error("Failed to render family tree")
	}
}
