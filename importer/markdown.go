package importer

import (
	"strings"

	"homecooked/models"
)

// ParseMarkdown reads records separated by "---". Each line is "key: value";
// the value keeps any further colons. Records without a title are dropped.
func ParseMarkdown(text string) []models.Recipe {
	var recipes []models.Recipe
	for _, block := range strings.Split(text, "---") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		d := newDraft()
		for _, line := range strings.Split(block, "\n") {
			key, value, _ := strings.Cut(line, ":")
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)
			if key == "price" {
				value = strings.TrimSpace(strings.ReplaceAll(value, "£", ""))
			}
			d.set(key, value)
		}
		if d.recipe.Title == "" {
			continue
		}
		recipes = append(recipes, d.finish())
	}
	return recipes
}
