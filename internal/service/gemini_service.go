package service

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"mindcare/internal/config"
	"mindcare/internal/prompts"
	"mindcare/internal/util"
)

// GeminiService handles all interactions with the Gemini API
type GeminiService struct {
	client *genai.Client
	model  string
	logger *util.Logger
}

// NewGeminiService creates a new Gemini service instance. It returns an
// error when the API key is missing or the client cannot be built; the
// caller decides whether that is fatal or puts the process in degraded
// mode.
func NewGeminiService(ctx context.Context, cfg *config.Config) (*GeminiService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  config.GeminiModel,
		logger: util.NewLogger("GeminiService"),
	}, nil
}

// Model returns the fixed model identifier this service calls.
func (gs *GeminiService) Model() string {
	return gs.model
}

// Advise sends the user's query to Gemini with the fixed system
// instruction and the Google Search grounding tool, and returns the
// model's text verbatim.
func (gs *GeminiService) Advise(ctx context.Context, query string) (string, error) {
	gs.logger.Start("Generate Advice")

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompts.SystemInstruction(), genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	result, err := gs.client.Models.GenerateContent(ctx, gs.model, genai.Text(query), genCfg)
	if err != nil {
		gs.logger.Error("Failed to generate content", err)
		gs.logger.End("Generate Advice")
		return "", classify(fmt.Errorf("gemini api call failed: %w", err))
	}

	text := result.Text()
	if text == "" {
		gs.logger.End("Generate Advice")
		return "", fmt.Errorf("empty response from gemini")
	}

	gs.logger.Success("Advice generated")
	gs.logger.End("Generate Advice")
	return text, nil
}
