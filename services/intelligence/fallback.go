// File: services/intelligence/fallback.go
package ai

import (
	"context"
	"regexp"
	"strings"

	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

const stubModel = "LLM-stub"

var (
	deadlineHint = regexp.MustCompile(`(?i)deadline|limitation|date`)
	divorceHint  = regexp.MustCompile(`(?i)divorce`)
)

// RuleBasedCompleter answers from a fixed set of canned responses. It never fails.
type RuleBasedCompleter struct {
	Model string
}

func (r RuleBasedCompleter) Name() string { return "rules" }

func (r RuleBasedCompleter) Complete(ctx context.Context, prompt string) (*models.Completion, error) {
	q := questionOf(prompt)
	answer := utils.LegalDisclaimer
	if deadlineHint.MatchString(q) {
		answer = "Limitation periods vary by matter and jurisdiction. Check the Limitation Act or local court rules."
	}
	if divorceHint.MatchString(q) {
		answer = "Typical divorce steps: petition filing, service, response, mediation/settlement, and final decree."
	}
	model := r.Model
	if model == "" {
		model = stubModel
	}
	return &models.Completion{Text: answer, Model: model}, nil
}

// questionOf extracts the user question from an assistant prompt so canned
// rules never match words of the instructions.
func questionOf(prompt string) string {
	i := strings.LastIndex(prompt, questionMarker)
	if i < 0 {
		return prompt
	}
	q := prompt[i+len(questionMarker):]
	if j := strings.Index(q, answerMarker); j >= 0 {
		q = q[:j]
	}
	return q
}

// FallbackCompleter tries Primary and answers from the rule set when it is
// absent or fails. Upstream errors are logged, never returned.
type FallbackCompleter struct {
	Primary TextCompleter
	Logger  *zap.Logger
}

func NewFallbackCompleter(primary TextCompleter, logger *zap.Logger) *FallbackCompleter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackCompleter{Primary: primary, Logger: logger}
}

func (f *FallbackCompleter) Name() string {
	if f.Primary == nil {
		return "rules"
	}
	return f.Primary.Name()
}

// HasRemote reports whether a remote completer is configured.
func (f *FallbackCompleter) HasRemote() bool {
	return f.Primary != nil
}

func (f *FallbackCompleter) Complete(ctx context.Context, prompt string) (*models.Completion, error) {
	if f.Primary == nil {
		return RuleBasedCompleter{Model: stubModel}.Complete(ctx, prompt)
	}
	out, err := f.Primary.Complete(ctx, prompt)
	if err == nil {
		return out, nil
	}
	f.Logger.Warn("completion failed, using rule-based fallback",
		zap.String("completer", f.Primary.Name()),
		zap.Error(err))
	return RuleBasedCompleter{Model: f.Primary.Name() + "-fallback"}.Complete(ctx, prompt)
}
