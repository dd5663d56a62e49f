package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"homecooked/models"
)

// ParseCSV reads a headed table. Headers are matched case-insensitively
// after trimming; quoted fields may contain commas.
func ParseCSV(text string) ([]models.Recipe, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, ErrInvalidCSV
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var recipes []models.Recipe
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ErrInvalidCSV
		}
		if blank(row) {
			continue
		}

		d := newDraft()
		for i, key := range keys {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			d.set(key, value)
		}
		recipes = append(recipes, d.finish())
	}
	return recipes, nil
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
