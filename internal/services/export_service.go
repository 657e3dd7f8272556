package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService builds spreadsheet exports of the person collection
type ExportService struct {
	treeService *TreeService
}

func NewExportService(treeService *TreeService) *ExportService {
	return &ExportService{
		treeService: treeService,
	}
}

const exportSheet = "People"

// BuildWorkbook renders the current snapshot into an Excel workbook
// with one row per person. Parent IDs are joined with ", ".
func (s *ExportService) BuildWorkbook() (*excelize.File, error) {
	return buildWorkbook(s.treeService.All())
}

func buildWorkbook(people []*models.Person) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Birth", "Death", "Photo URL", "Parents"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, person := range people {
		values := []string{
			person.ID,
			person.Name,
			person.Birth,
			person.Death,
			person.PhotoURL,
			strings.Join(person.Parents, ", "),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFilename returns the download filename for the workbook
func ExportFilename() string {
	return fmt.Sprintf("family-tree-%s.xlsx", time.Now().Format("2006-01-02"))
}
