// File: services/extraction/gemini.go
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"eventify/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const extractionPrompt = `Extract event booking details from the user message below.
Respond with a single JSON object and nothing else, using this shape:
{"eventType": "wedding|birthday|corporate|conference|party|general",
 "locations": ["lowercase place names"],
 "budget": 0,
 "guests": 0,
 "date": "YYYY-MM-DD or empty"}
User message: %s`

// GeminiExtractor extracts demand entities with the Gemini API.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

// NewGeminiExtractor creates the AI-backed extractor. With an empty API key
// (or a failed client init) the extractor reports itself unavailable and the
// service routes around it.
func NewGeminiExtractor(apiKey string) *GeminiExtractor {
	if apiKey == "" {
		return &GeminiExtractor{}
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return &GeminiExtractor{}
	}
	return &GeminiExtractor{model: client.GenerativeModel("models/gemini-1.5-pro")}
}

func (g *GeminiExtractor) Name() string { return "gemini" }

func (g *GeminiExtractor) Available() bool { return g.model != nil }

func (g *GeminiExtractor) Extract(ctx context.Context, text string) (models.Demand, error) {
	if g.model == nil {
		return models.Demand{}, models.UpstreamUnavailableError{
			Service: "gemini",
			Err:     fmt.Errorf("no client configured"),
		}
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		return models.Demand{}, models.UpstreamUnavailableError{Service: "gemini", Err: err}
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}

	demand, err := parseDemandJSON(sb.String())
	if err != nil {
		return models.Demand{}, models.UpstreamUnavailableError{Service: "gemini", Err: err}
	}
	demand.Description = text
	return demand, nil
}

// parseDemandJSON tolerates markdown code fences around the model output.
func parseDemandJSON(raw string) (models.Demand, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed struct {
		EventType string   `json:"eventType"`
		Locations []string `json:"locations"`
		Budget    float64  `json:"budget"`
		Guests    int      `json:"guests"`
		Date      string   `json:"date"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.Demand{}, fmt.Errorf("unparseable model output: %w", err)
	}

	demand := models.Demand{
		EventType: strings.ToLower(strings.TrimSpace(parsed.EventType)),
		Budget:    parsed.Budget,
		Guests:    parsed.Guests,
		Date:      parsed.Date,
	}
	if demand.EventType == "" {
		demand.EventType = "general"
	}
	if demand.Budget < 0 {
		demand.Budget = 0
	}
	if demand.Guests < 0 {
		demand.Guests = 0
	}
	for _, loc := range parsed.Locations {
		if trimmed := strings.ToLower(strings.TrimSpace(loc)); trimmed != "" {
			demand.Locations = append(demand.Locations, trimmed)
		}
	}
	return demand, nil
}
