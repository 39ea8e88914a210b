// File: services/intelligence/interface.go
package ai

import (
	"context"

	"casexpert/models"
)

// TextCompleter produces a completion for a prompt. Remote implementations
// return an upstream_failure error when the service errors or times out.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (*models.Completion, error)
	Name() string
}

// Transcriber turns audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error)
}

// AssistantService answers legal questions through a TextCompleter.
type AssistantService interface {
	Ask(ctx context.Context, ip, query string) (*models.AssistantResponse, error)
}

// MLService bundles the document helpers exposed under /api/ml.
type MLService interface {
	Summarize(ctx context.Context, text string) (*models.SummarizeResponse, error)
	Translate(ctx context.Context, text, target string) (*models.TranslateResponse, error)
	OCR(ctx context.Context, image []byte) (*models.Transcript, error)
	Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error)
	Hash(content, algorithm string) (*models.HashResponse, error)
}
