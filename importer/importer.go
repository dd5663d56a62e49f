// Package importer turns bulk-upload files into recipes. Accepted layouts
// are a headed CSV table (or the same table as an .xlsx workbook) and a
// Markdown-ish list of "key: value" records separated by "---".
package importer

import (
	"errors"
	"fmt"
	"strings"

	"homecooked/models"
)

const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

var (
	ErrNoRecipes          = errors.New("No valid recipes found in the file.")
	ErrInvalidCSV         = errors.New("Invalid CSV format. Please check your file.")
	ErrInvalidSpreadsheet = errors.New("Invalid spreadsheet. Please check your file.")
	ErrUnsupportedFormat  = errors.New("unsupported import format")
)

// Parse dispatches on format ("csv", "markdown" or "md") and fails with
// ErrNoRecipes when nothing usable was found.
func Parse(format, text string) ([]models.Recipe, error) {
	return ParseBytes(format, []byte(text))
}

// ParseBytes is Parse for raw file content, which also accepts "xlsx".
func ParseBytes(format string, data []byte) ([]models.Recipe, error) {
	text := string(data)
	var (
		recipes []models.Recipe
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		recipes, err = ParseCSV(text)
	case FormatMarkdown, "md":
		recipes = ParseMarkdown(text)
	case FormatXLSX:
		recipes, err = ParseXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// draft collects raw field values before numeric coercion.
type draft struct {
	recipe models.Recipe
}

func newDraft() *draft {
	return &draft{recipe: models.Recipe{Servings: 2, IsActive: true}}
}

// set applies one recognised key. Unknown keys are ignored.
func (d *draft) set(key, value string) {
	r := &d.recipe
	switch key {
	case "title":
		r.Title = value
	case "description":
		r.Description = value
	case "preptime", "prep_time", "prep time":
		r.PrepTime = value
	case "servings":
		r.Servings = parseServings(value)
	case "calories":
		r.Calories, _ = leadingInt(value)
	case "price":
		r.Price, _ = leadingFloat(value)
	case "imageurl", "image_url", "image":
		r.ImageURL = value
	case "category":
		r.Category = value
	case "skilllevel", "skill_level", "skill level":
		r.SkillLevel = value
	}
}

// finish normalises closed-set fields so stored rows stay valid.
func (d *draft) finish() models.Recipe {
	r := d.recipe
	if !models.IsCategory(r.Category) {
		r.Category = matchFold(models.Categories, r.Category, models.CategoryModernBritish)
	}
	if !models.IsSkillLevel(r.SkillLevel) {
		r.SkillLevel = matchFold(models.SkillLevels, r.SkillLevel, models.SkillEasy)
	}
	return r
}

func matchFold(options []string, value, fallback string) string {
	value = strings.TrimSpace(value)
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return o
		}
	}
	return fallback
}

func parseServings(value string) int {
	n, ok := leadingInt(value)
	if !ok || n == 0 {
		return 2
	}
	return n
}

// FormatFromFilename guesses the import format from a file extension.
func FormatFromFilename(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV
	case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
		return FormatMarkdown
	case strings.HasSuffix(lower, ".xlsx"):
		return FormatXLSX
	}
	return ""
}
