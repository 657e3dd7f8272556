package handlers

import (
	"net/http"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/services"
	"github.com/gin-gonic/gin"
)

type TreeHandler struct {
	treeService   *services.TreeService
	exportService *services.ExportService
	renderer      *services.PageRenderer
}

func NewTreeHandler(treeService *services.TreeService, exportService *services.ExportService, renderer *services.PageRenderer) *TreeHandler {
	return &TreeHandler{
		treeService:   treeService,
		exportService: exportService,
		renderer:      renderer,
	}
}

// Index displays the family tree page
func (h *TreeHandler) Index(c *gin.Context) {
	h.renderPage(c, "tree", false)
}

// Parallax displays the parallax-styled family tree page
func (h *TreeHandler) Parallax(c *gin.Context) {
	h.renderPage(c, "parallax", true)
}

func (h *TreeHandler) renderPage(c *gin.Context, template string, parallax bool) {
	data := gin.H{
		"Title":      "Family Tree",
		"Definition": h.renderer.Definition(),
		"People":     h.treeService.All(),
		"Parallax":   parallax,
	}

	c.HTML(http.StatusOK, template, data)
}

// Export streams the person collection as an Excel workbook
func (h *TreeHandler) Export(c *gin.Context) {
	workbook, err := h.exportService.BuildWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename())
	if err := workbook.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
