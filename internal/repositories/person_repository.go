package repositories

import (
	"database/sql"
	"encoding/json"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create inserts a new person. Parents are stored as a JSON array.
func (r *PersonRepository) Create(person *models.Person) error {
	parents, err := encodeParents(person.Parents)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO people (
			id, name, birth, death, photo_url, parents
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, person.ID, person.Name, person.Birth, person.Death, person.PhotoURL, parents)
	return err
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	query := `
		SELECT id, name, birth, death, photo_url, parents, created_at, updated_at
		FROM people WHERE id = ?
	`

	return scanPerson(r.db.QueryRow(query, id))
}

// GetAll retrieves the complete collection of person records
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, name, birth, death, photo_url, parents, created_at, updated_at
		FROM people ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// Update replaces an existing person's row entirely
func (r *PersonRepository) Update(person *models.Person) error {
	parents, err := encodeParents(person.Parents)
	if err != nil {
		return err
	}

	query := `
		UPDATE people SET
			name = ?, birth = ?, death = ?, photo_url = ?, parents = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err = r.db.Exec(query, person.Name, person.Birth, person.Death, person.PhotoURL, parents, person.ID)
	return err
}

// Delete deletes a person by ID
func (r *PersonRepository) Delete(id string) error {
	query := `DELETE FROM people WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	person := &models.Person{}
	var parents string

	err := row.Scan(
		&person.ID, &person.Name, &person.Birth, &person.Death, &person.PhotoURL,
		&parents, &person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(parents), &person.Parents); err != nil {
		return nil, err
	}
	if person.Parents == nil {
		person.Parents = []string{}
	}

	return person, nil
}

func encodeParents(parents []string) (string, error) {
	if parents == nil {
		parents = []string{}
	}
	data, err := json.Marshal(parents)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
