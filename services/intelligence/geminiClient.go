// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"casexpert/models"
	"casexpert/utils"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter completes prompts with a Google Gemini model.
type GeminiCompleter struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/" + modelName)
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(180)
	return &GeminiCompleter{client: client, model: model, modelName: modelName}, nil
}

func (g *GeminiCompleter) Name() string { return "gemini" }

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (*models.Completion, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, utils.WrapError(utils.KindUpstreamFailure, "gemini generate error", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, utils.NewError(utils.KindUpstreamFailure, "gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		text = emptyAnswer
	}
	return &models.Completion{Text: text, Model: g.modelName}, nil
}

func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}
