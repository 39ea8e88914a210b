// File: services/intelligence/ml.go
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const (
	summaryLimit    = 220
	summaryKeep     = 200
	summarizerModel = "LegalT5-stub"
	translatorModel = "MarianMT-stub"
	ocrModel        = "Tesseract-stub"
	ocrPlaceholder  = "OCR extraction placeholder"
	summaryPrompt   = "Summarize the following legal text in a few sentences:\n\n"
)

// DefaultMLService is the production implementation.
type DefaultMLService struct {
	// Completer, when set, is tried for summaries before truncation.
	Completer   TextCompleter
	Transcriber Transcriber
	Logger      *zap.Logger
}

func NewMLService(completer TextCompleter, transcriber Transcriber, logger *zap.Logger) *DefaultMLService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if transcriber == nil {
		transcriber = StubTranscriber{}
	}
	return &DefaultMLService{Completer: completer, Transcriber: transcriber, Logger: logger}
}

// truncateSummary keeps short texts whole and cuts long ones to 200 runes plus an ellipsis.
func truncateSummary(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return string(runes[:summaryKeep]) + "…"
}

func (s *DefaultMLService) Summarize(ctx context.Context, text string) (*models.SummarizeResponse, error) {
	if text == "" {
		return nil, utils.NewError(utils.KindInvalidInput, "text is required")
	}
	if s.Completer != nil {
		out, err := s.Completer.Complete(ctx, summaryPrompt+text)
		if err == nil && strings.TrimSpace(out.Text) != "" {
			return &models.SummarizeResponse{Summary: out.Text, Model: out.Model}, nil
		}
		if err != nil {
			s.Logger.Warn("summarization failed, truncating instead", zap.Error(err))
		}
	}
	return &models.SummarizeResponse{Summary: truncateSummary(text), Model: summarizerModel}, nil
}

// Translate echoes text; no translation backend is wired.
func (s *DefaultMLService) Translate(ctx context.Context, text, target string) (*models.TranslateResponse, error) {
	if target == "" {
		target = "en"
	}
	return &models.TranslateResponse{Translated: text, Target: target, Model: translatorModel}, nil
}

func (s *DefaultMLService) OCR(ctx context.Context, image []byte) (*models.Transcript, error) {
	return &models.Transcript{Text: ocrPlaceholder, Model: ocrModel}, nil
}

func (s *DefaultMLService) Transcribe(ctx context.Context, audio []byte, language string) (*models.Transcript, error) {
	return s.Transcriber.Transcribe(ctx, audio, language)
}

// Hash fingerprints content for document integrity checks. sha256 is the
// default; blake2b selects BLAKE2b-256.
func (s *DefaultMLService) Hash(content, algorithm string) (*models.HashResponse, error) {
	switch strings.ToLower(algorithm) {
	case "", "sha256":
		sum := sha256.Sum256([]byte(content))
		return &models.HashResponse{Algorithm: "sha256", Hash: hex.EncodeToString(sum[:])}, nil
	case "blake2b", "blake2b-256":
		sum := blake2b.Sum256([]byte(content))
		return &models.HashResponse{Algorithm: "blake2b-256", Hash: hex.EncodeToString(sum[:])}, nil
	default:
		return nil, utils.NewError(utils.KindInvalidInput, "algorithm must be sha256 or blake2b")
	}
}
