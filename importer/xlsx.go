package importer

import (
	"strings"

	"homecooked/models"

	"github.com/tealeg/xlsx"
)

const FormatXLSX = "xlsx"

// ParseXLSX reads the first sheet of a workbook laid out like the CSV import:
// a header row followed by one recipe per row.
func ParseXLSX(data []byte) ([]models.Recipe, error) {
	book, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, ErrInvalidSpreadsheet
	}
	if len(book.Sheets) == 0 || len(book.Sheets[0].Rows) == 0 {
		return nil, nil
	}

	rows := book.Sheets[0].Rows
	keys := make([]string, 0, len(rows[0].Cells))
	for _, cell := range rows[0].Cells {
		keys = append(keys, strings.ToLower(strings.TrimSpace(cell.String())))
	}

	var recipes []models.Recipe
	for _, row := range rows[1:] {
		if row == nil {
			continue
		}
		values := make([]string, len(keys))
		for i := range keys {
			if i < len(row.Cells) && row.Cells[i] != nil {
				values[i] = strings.TrimSpace(row.Cells[i].String())
			}
		}
		if blank(values) {
			continue
		}

		d := newDraft()
		for i, key := range keys {
			d.set(key, values[i])
		}
		recipes = append(recipes, d.finish())
	}
	return recipes, nil
}

// WriteXLSX lays recipes out with the same headers ParseXLSX accepts.
func WriteXLSX(recipes []models.Recipe) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Recipes")
	if err != nil {
		return nil, err
	}

	headers := []string{
		"id", "title", "description", "prepTime", "servings", "calories",
		"price", "imageUrl", "category", "skillLevel", "isActive", "createdAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, r := range recipes {
		row := sheet.AddRow()
		row.AddCell().SetValue(r.ID)
		row.AddCell().SetValue(r.Title)
		row.AddCell().SetValue(r.Description)
		row.AddCell().SetValue(r.PrepTime)
		row.AddCell().SetValue(r.Servings)
		row.AddCell().SetValue(r.Calories)
		row.AddCell().SetValue(r.Price)
		row.AddCell().SetValue(r.ImageURL)
		row.AddCell().SetValue(r.Category)
		row.AddCell().SetValue(r.SkillLevel)
		row.AddCell().SetValue(r.IsActive)
		row.AddCell().SetValue(r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}
