package handlers

import (
	"net/http"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/services"
	"github.com/gin-gonic/gin"
)

type PeopleHandler struct {
	treeService *services.TreeService
}

func NewPeopleHandler(treeService *services.TreeService) *PeopleHandler {
	return &PeopleHandler{
		treeService: treeService,
	}
}

// personForm is the payload the edit modal submits. The modal always
// submits the complete record, never a partial patch.
type personForm struct {
	Name     string   `json:"name"`
	Birth    string   `json:"birth"`
	Death    string   `json:"death"`
	PhotoURL string   `json:"photo_url"`
	Parents  []string `json:"parents"`
}

// List returns the current person collection
func (h *PeopleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"people": h.treeService.All(),
	})
}

// GetPerson returns a single person for the edit modal
func (h *PeopleHandler) GetPerson(c *gin.Context) {
	person, err := h.treeService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"person": person})
}

// CreatePerson inserts a new person from the edit modal
func (h *PeopleHandler) CreatePerson(c *gin.Context) {
	h.save(c, "")
}

// UpdatePerson replaces an existing person from the edit modal
func (h *PeopleHandler) UpdatePerson(c *gin.Context) {
	h.save(c, c.Param("id"))
}

// save commits a full record. A write failure leaves the snapshot
// untouched and reports an error so the modal stays open.
func (h *PeopleHandler) save(c *gin.Context, id string) {
	var form personForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person payload"})
		return
	}

	if form.Parents == nil {
		form.Parents = []string{}
	}

	person := &models.Person{
		ID:       id,
		Name:     form.Name,
		Birth:    form.Birth,
		Death:    form.Death,
		PhotoURL: form.PhotoURL,
		Parents:  form.Parents,
	}

	savedID, err := h.treeService.Upsert(person)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save person"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": savedID})
}

// DeletePerson removes a person
func (h *PeopleHandler) DeletePerson(c *gin.Context) {
	if err := h.treeService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete person"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
