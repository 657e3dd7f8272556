package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/genealogy"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/repositories"
	"github.com/stretchr/testify/assert"
)

// failingBackend rejects every operation, simulating a broken row store.
type failingBackend struct{}

func (f *failingBackend) GetAll() ([]*models.Person, error) {
	return nil, errors.New("backend down")
}

func (f *failingBackend) Create(person *models.Person) error { return errors.New("backend down") }
func (f *failingBackend) Update(person *models.Person) error { return errors.New("backend down") }
func (f *failingBackend) Delete(id string) error             { return errors.New("backend down") }

// failingRenderer rejects every definition, simulating a renderer that
// cannot lay out the description.
type failingRenderer struct {
	calls int
}

func (f *failingRenderer) Render(definition string) error {
	f.calls++
	return errors.New("malformed description")
}

func newTestService() (*TreeService, *repositories.MemoryPersonRepository, *PageRenderer) {
	backend := repositories.NewMemoryPersonRepository()
	renderer := NewPageRenderer()
	service := NewTreeService(backend, genealogy.NewStore(), renderer)
	return service, backend, renderer
}

func countEdges(definition string) int {
	return strings.Count(definition, "-->")
}

func countNodes(definition string) int {
	count := 0
	for _, line := range strings.Split(definition, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "graph TD" || strings.Contains(line, "-->") {
			continue
		}
		count++
	}
	return count
}

func TestTreeServiceLoad(t *testing.T) {
	t.Run("Load projects the fetched snapshot", func(t *testing.T) {
		service, backend, renderer := newTestService()
		backend.Create(&models.Person{ID: "1", Name: "A", Birth: "1900"})
		backend.Create(&models.Person{ID: "2", Name: "B", Birth: "1930", Parents: []string{"1"}})

		err := service.Load()

		assert.NoError(t, err)
		assert.Len(t, service.All(), 2)

		definition := renderer.Definition()
		assert.Contains(t, definition, `1("A / 1900")`)
		assert.Contains(t, definition, `2("B / 1930")`)
		assert.Contains(t, definition, "1 --> 2")
		assert.Equal(t, 2, countNodes(definition))
		assert.Equal(t, 1, countEdges(definition))
	})

	t.Run("Empty store is never projected", func(t *testing.T) {
		service, _, renderer := newTestService()

		err := service.Load()

		assert.NoError(t, err)
		assert.Empty(t, renderer.Definition())
	})

	t.Run("Failed fetch keeps the prior snapshot", func(t *testing.T) {
		backend := repositories.NewMemoryPersonRepository()
		backend.Create(&models.Person{ID: "1", Name: "A"})
		renderer := NewPageRenderer()
		store := genealogy.NewStore()
		service := NewTreeService(backend, store, renderer)
		assert.NoError(t, service.Load())

		// Swap in a broken backend and try to reload.
		broken := NewTreeService(&failingBackend{}, store, renderer)
		err := broken.Load()

		assert.Error(t, err)
		assert.Len(t, store.All(), 1, "stale snapshot stays displayed on load failure")
	})
}

func TestTreeServiceUpsert(t *testing.T) {
	t.Run("Record without ID is inserted under a fresh identifier", func(t *testing.T) {
		service, _, renderer := newTestService()
		service.Upsert(&models.Person{ID: "", Name: "A", Birth: "1900"})
		people := service.All()
		assert.Len(t, people, 1)
		firstID := people[0].ID

		secondID, err := service.Upsert(&models.Person{Name: "C", Birth: "1960", Parents: []string{firstID}})

		assert.NoError(t, err)
		assert.NotEmpty(t, secondID)
		assert.NotEqual(t, firstID, secondID)
		assert.Len(t, service.All(), 2)

		definition := renderer.Definition()
		assert.Equal(t, 2, countNodes(definition))
		assert.Equal(t, 1, countEdges(definition))
		assert.Contains(t, definition, firstID+" --> "+secondID)
	})

	t.Run("Known ID is a full-row replacement", func(t *testing.T) {
		service, _, _ := newTestService()
		id, err := service.Upsert(&models.Person{Name: "Old", Birth: "1900", PhotoURL: "http://example.com/old.jpg"})
		assert.NoError(t, err)

		_, err = service.Upsert(&models.Person{ID: id, Name: "New", Birth: "1901"})

		assert.NoError(t, err)
		replaced, err := service.Get(id)
		assert.NoError(t, err)
		assert.Equal(t, "New", replaced.Name)
		assert.Empty(t, replaced.PhotoURL, "full overwrite must drop omitted fields")
		assert.Len(t, service.All(), 1)
	})

	t.Run("Failed backend write never commits locally", func(t *testing.T) {
		store := genealogy.NewStore()
		renderer := NewPageRenderer()
		service := NewTreeService(&failingBackend{}, store, renderer)

		_, err := service.Upsert(&models.Person{Name: "A", Birth: "1900"})

		assert.Error(t, err)
		assert.Equal(t, 0, store.Len())
		assert.Empty(t, renderer.Definition())
	})

	t.Run("Nil record is rejected", func(t *testing.T) {
		service, _, _ := newTestService()

		_, err := service.Upsert(nil)

		assert.Error(t, err)
	})
}

func TestTreeServiceDelete(t *testing.T) {
	t.Run("Delete removes the record and re-projects", func(t *testing.T) {
		service, _, renderer := newTestService()
		id, _ := service.Upsert(&models.Person{Name: "A", Birth: "1900"})
		keptID, _ := service.Upsert(&models.Person{Name: "B", Birth: "1930"})

		err := service.Delete(id)

		assert.NoError(t, err)
		assert.Len(t, service.All(), 1)
		assert.Contains(t, renderer.Definition(), keptID)
		assert.NotContains(t, renderer.Definition(), id)
	})

	t.Run("Unknown ID is rejected", func(t *testing.T) {
		service, _, _ := newTestService()

		assert.Error(t, service.Delete("ghost"))
		assert.Error(t, service.Delete(""))
	})
}

func TestTreeServiceRenderFailure(t *testing.T) {
	backend := repositories.NewMemoryPersonRepository()
	backend.Create(&models.Person{ID: "1", Name: "A", Birth: "1900"})
	store := genealogy.NewStore()
	renderer := &failingRenderer{}
	service := NewTreeService(backend, store, renderer)

	err := service.Load()

	assert.NoError(t, err, "a render failure never propagates to the caller")
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, store.Len(), "a render failure never corrupts the store")
}

func TestTreeServiceGet(t *testing.T) {
	service, _, _ := newTestService()
	id, _ := service.Upsert(&models.Person{Name: "A", Birth: "1900"})

	person, err := service.Get(id)
	assert.NoError(t, err)
	assert.Equal(t, "A", person.Name)

	_, err = service.Get("missing")
	assert.Error(t, err)

	_, err = service.Get("")
	assert.Error(t, err)
}
