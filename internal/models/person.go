package models

import (
	"time"

	"github.com/google/uuid"
)

// Person represents a single genealogy record. Birth and Death are
// free-text year strings; an empty Death means the person is living.
// Parents holds the IDs of zero or more other Person records; the
// order carries no meaning beyond render order.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Birth     string    `json:"birth"`
	Death     string    `json:"death"`
	PhotoURL  string    `json:"photo_url"`
	Parents   []string  `json:"parents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a new Person with a generated UUID and no parents
func NewPerson(name, birth, death, photoURL string) *Person {
	return &Person{
		ID:       uuid.New().String(),
		Name:     name,
		Birth:    birth,
		Death:    death,
		PhotoURL: photoURL,
		Parents:  []string{},
	}
}

// Years formats the lifespan portion of the display label:
// "birth - death" when a death year is set, otherwise just the birth year.
func (p *Person) Years() string {
	if p.Death != "" {
		return p.Birth + " - " + p.Death
	}
	return p.Birth
}

// Clone returns a disconnected copy of the person, suitable as an
// edit buffer that can be mutated without touching the stored record.
func (p *Person) Clone() *Person {
	clone := *p
	clone.Parents = make([]string, len(p.Parents))
	copy(clone.Parents, p.Parents)
	return &clone
}
