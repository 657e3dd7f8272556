package genealogy

import (
	"fmt"
	"strings"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
)

// BuildDefinition projects a snapshot of person records into a Mermaid
// "graph TD" definition: one node per record and one parent --> child
// edge per parents entry that resolves to a record in the snapshot.
// Parents entries that point at no known record are dropped silently.
//
// The projector only guards the label's surrounding double quotes:
// double quotes in names are replaced with single quotes. Other
// characters that Mermaid treats specially are passed through as-is.
func BuildDefinition(people []*models.Person) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	known := make(map[string]bool, len(people))
	for _, person := range people {
		known[person.ID] = true
	}

	for _, person := range people {
		fmt.Fprintf(&b, "    %s(\"%s\")\n", person.ID, nodeLabel(person))
	}

	for _, person := range people {
		for _, parentID := range person.Parents {
			if !known[parentID] {
				continue
			}
			fmt.Fprintf(&b, "    %s --> %s\n", parentID, person.ID)
		}
	}

	return b.String()
}

// nodeLabel builds the display label: optional photo thumbnail, then
// the name, then the lifespan. Nodes without a photo get no thumbnail;
// the stylesheet shows a fallback glyph for them.
func nodeLabel(person *models.Person) string {
	label := strings.ReplaceAll(person.Name, `"`, `'`)
	if years := person.Years(); years != "" {
		label += " / " + years
	}

	if person.PhotoURL != "" {
		return fmt.Sprintf("<img src='%s' width='80'/><br/>%s", person.PhotoURL, label)
	}
	return label
}
