// Package llm suggests meal ideas from free-text preferences.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse = errors.New("no response from AI")
	ErrNoPreferences = errors.New("preferences are required")
)

// Recommendation is one suggested meal.
type Recommendation struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	Pairing string `json:"pairing"`
}

// Recommender produces meal suggestions for a preference string.
type Recommender interface {
	Recommend(ctx context.Context, preferences string) ([]Recommendation, error)
}

// Prompt builds the instruction sent to the model.
func Prompt(preferences string) string {
	return fmt.Sprintf(
		"Suggest three sophisticated homecooked meal kit ideas based on these preferences: %q.\n"+
			"Each suggestion should sound premium and appetizing.",
		strings.TrimSpace(preferences),
	)
}

// decodeRecommendations parses the model's JSON answer.
func decodeRecommendations(text string) ([]Recommendation, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var recs []Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return recs, nil
}
