package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiRecommender asks Gemini for structured JSON recommendations.
type GeminiRecommender struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiRecommender creates a client for modelName using apiKey.
func NewGeminiRecommender(ctx context.Context, apiKey, modelName string) (*GeminiRecommender, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	return &GeminiRecommender{client: client, model: model}, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the gourmet meal.",
				},
				"reason": {
					Type:        genai.TypeString,
					Description: "Why this matches the user preferences.",
				},
				"pairing": {
					Type:        genai.TypeString,
					Description: "A suggested wine or beverage pairing.",
				},
			},
			Required: []string{"name", "reason", "pairing"},
		},
	}
}

func (g *GeminiRecommender) Recommend(ctx context.Context, preferences string) ([]Recommendation, error) {
	if strings.TrimSpace(preferences) == "" {
		return nil, ErrNoPreferences
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(Prompt(preferences)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return decodeRecommendations(sb.String())
}

func (g *GeminiRecommender) Close() error {
	return g.client.Close()
}
