// File: services/intelligence/assistant.go
package ai

import (
	"context"
	"regexp"
	"time"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"
)

const (
	AssistantPath = "/api/assistant/query"

	systemPrompt = "You are CaseXpert, a legal-only assistant. Strictly answer only legal and law-related questions. If a question is non-legal, politely refuse and ask to provide a legal topic. Be concise and include disclaimers that this is not legal advice."

	questionMarker = "\n\nQuestion: "
	answerMarker   = "\n\nAnswer:"

	refusal     = "I can only assist with law-related questions. Please rephrase your query to be about legal topics."
	policyGuard = "policy-guard"
)

var legalHints = regexp.MustCompile(`(?i)(law|legal|case|suit|court|petition|contract|divorce|criminal|civil|ip|trademark|copyright|limitation|appeal|bail|evidence|jurisdiction|section|act)`)

// IsLegalQuery is the keyword guard applied before any completion.
func IsLegalQuery(q string) bool {
	return legalHints.MatchString(q)
}

// BuildPrompt wraps a user question in the assistant instructions.
func BuildPrompt(query string) string {
	return systemPrompt + questionMarker + query + answerMarker
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Completer TextCompleter
	Logs      recordsRepo.QueryLogRepository
	Now       func() time.Time
}

func NewAssistantService(completer TextCompleter, logs recordsRepo.QueryLogRepository) *DefaultAssistantService {
	return &DefaultAssistantService{Completer: completer, Logs: logs, Now: time.Now}
}

// Ask answers query. Non-legal queries are refused without calling the
// completer and are not logged. A failure to record the query log fails the
// request.
func (s *DefaultAssistantService) Ask(ctx context.Context, ip, query string) (*models.AssistantResponse, error) {
	if query == "" {
		return nil, utils.NewError(utils.KindInvalidInput, "query is required")
	}
	if !IsLegalQuery(query) {
		return &models.AssistantResponse{Answer: refusal, Model: policyGuard}, nil
	}

	out, err := s.Completer.Complete(ctx, BuildPrompt(query))
	if err != nil {
		return nil, err
	}

	entry := models.LogEntry{
		TS:    s.Now().UnixMilli(),
		IP:    ip,
		Path:  AssistantPath,
		Query: query,
		Model: out.Model,
	}
	if err := s.Logs.Append(ctx, entry); err != nil {
		return nil, err
	}
	return &models.AssistantResponse{Answer: out.Text, Model: out.Model}, nil
}
