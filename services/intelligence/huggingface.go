// File: services/intelligence/huggingface.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"casexpert/models"
	"casexpert/utils"
)

const (
	defaultHFBaseURL = "https://api-inference.huggingface.co/models/"
	emptyAnswer      = "Unable to generate a response at the moment."
)

// HuggingFaceCompleter calls the Hugging Face inference API.
type HuggingFaceCompleter struct {
	token   string
	model   string
	baseURL string
	client  *http.Client
}

func NewHuggingFaceCompleter(token, model string, timeout time.Duration) *HuggingFaceCompleter {
	return &HuggingFaceCompleter{
		token:   token,
		model:   model,
		baseURL: defaultHFBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the completer at another inference endpoint.
func (h *HuggingFaceCompleter) WithBaseURL(base string) *HuggingFaceCompleter {
	h.baseURL = strings.TrimSuffix(base, "/") + "/"
	return h
}

func (h *HuggingFaceCompleter) Name() string { return "hf" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

type hfOutput struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

func (h *HuggingFaceCompleter) Complete(ctx context.Context, prompt string) (*models.Completion, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:     prompt,
		Parameters: hfParameters{MaxNewTokens: 180, Temperature: 0.3},
	})
	if err != nil {
		return nil, fmt.Errorf("hf: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("hf: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, utils.WrapError(utils.KindUpstreamFailure, "inference request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, utils.NewError(utils.KindUpstreamFailure, fmt.Sprintf("hf_bad_status_%d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, utils.WrapError(utils.KindUpstreamFailure, "failed to read inference response", err)
	}
	text, err := parseHFOutput(raw)
	if err != nil {
		return nil, utils.WrapError(utils.KindUpstreamFailure, "unexpected inference response", err)
	}
	if text == "" {
		text = emptyAnswer
	}
	// Text-generation pipelines echo the prompt.
	text = strings.TrimSpace(strings.Replace(text, prompt, "", 1))
	return &models.Completion{Text: text, Model: h.model}, nil
}

// parseHFOutput accepts both the list form returned by most pipelines and
// the single-object form.
func parseHFOutput(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []hfOutput
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "", nil
		}
		if list[0].GeneratedText != "" {
			return list[0].GeneratedText, nil
		}
		return list[0].SummaryText, nil
	}
	var single hfOutput
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return "", err
	}
	return single.GeneratedText, nil
}
