package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPerson(t *testing.T) {
	person := NewPerson("A", "1900", "", "http://example.com/a.jpg")

	assert.NotEmpty(t, person.ID)
	assert.Equal(t, "A", person.Name)
	assert.Equal(t, "1900", person.Birth)
	assert.Empty(t, person.Death)
	assert.Equal(t, "http://example.com/a.jpg", person.PhotoURL)
	assert.NotNil(t, person.Parents)
	assert.Empty(t, person.Parents)

	other := NewPerson("B", "1930", "", "")
	assert.NotEqual(t, person.ID, other.ID)
}

func TestPersonYears(t *testing.T) {
	testCases := []struct {
		name     string
		birth    string
		death    string
		expected string
	}{
		{name: "Living person", birth: "1900", death: "", expected: "1900"},
		{name: "Deceased person", birth: "1900", death: "1980", expected: "1900 - 1980"},
		{name: "No years at all", birth: "", death: "", expected: ""},
		{name: "Death without birth", birth: "", death: "1980", expected: " - 1980"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			person := &Person{Birth: tc.birth, Death: tc.death}
			assert.Equal(t, tc.expected, person.Years())
		})
	}
}

func TestPersonClone(t *testing.T) {
	original := &Person{ID: "1", Name: "A", Parents: []string{"x", "y"}}

	clone := original.Clone()
	clone.Name = "B"
	clone.Parents[0] = "z"

	assert.Equal(t, "A", original.Name)
	assert.Equal(t, []string{"x", "y"}, original.Parents, "mutating the clone must not touch the original")
}
