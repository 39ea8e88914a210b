package legal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

const (
	SearchPath          = "/api/legal/search"
	defaultJurisdiction = "in"
	courtListenerHost   = "https://www.courtlistener.com"
	userAgent           = "CaseXpert/0.1 (edu)"
	maxResults          = 5
)

type LegalService interface {
	Topics() []models.LegalTopic
	Search(ctx context.Context, ip, query, jurisdiction string) ([]models.LegalSearchItem, error)
}

// DefaultLegalService links out to Indian Kanoon and EUR-Lex and queries
// CourtListener for every other jurisdiction.
type DefaultLegalService struct {
	CourtListenerURL string
	Client           *http.Client
	Logs             recordsRepo.QueryLogRepository
	Logger           *zap.Logger
	Now              func() time.Time
}

func NewLegalService(courtListenerURL string, timeout time.Duration, logs recordsRepo.QueryLogRepository, logger *zap.Logger) *DefaultLegalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultLegalService{
		CourtListenerURL: courtListenerURL,
		Client:           &http.Client{Timeout: timeout},
		Logs:             logs,
		Logger:           logger,
		Now:              time.Now,
	}
}

func (s *DefaultLegalService) Topics() []models.LegalTopic {
	return Topics()
}

func (s *DefaultLegalService) Search(ctx context.Context, ip, query, jurisdiction string) ([]models.LegalSearchItem, error) {
	if query == "" {
		return []models.LegalSearchItem{}, nil
	}
	jurisdiction = strings.ToLower(jurisdiction)
	if jurisdiction == "" {
		jurisdiction = defaultJurisdiction
	}

	var items []models.LegalSearchItem
	q := url.QueryEscape(query)
	switch jurisdiction {
	case "eu":
		items = []models.LegalSearchItem{{Title: "EUR-Lex Search", URL: "https://eur-lex.europa.eu/search.html?text=" + q, Court: "EU"}}
	case "in":
		items = []models.LegalSearchItem{{Title: "Indian Kanoon Search", URL: "https://indiankanoon.org/search/?formInput=" + q, Court: "IN"}}
	default:
		var err error
		items, err = s.searchCourtListener(ctx, query)
		if err != nil {
			s.Logger.Error("legal search proxy failed", zap.String("jurisdiction", jurisdiction), zap.Error(err))
			return nil, utils.WrapError(utils.KindUpstreamFailure, "proxy_failed", err)
		}
	}

	entry := models.LogEntry{TS: s.Now().UnixMilli(), IP: ip, Path: SearchPath, Query: query, Jurisdiction: jurisdiction}
	if err := s.Logs.Append(ctx, entry); err != nil {
		return nil, err
	}
	return items, nil
}

type courtListenerResponse struct {
	Results []courtListenerResult `json:"results"`
}

type courtListenerResult struct {
	CaseName    string          `json:"caseName"`
	AbsoluteURL string          `json:"absolute_url"`
	Court       string          `json:"court"`
	DateFiled   string          `json:"dateFiled"`
	Citation    json.RawMessage `json:"citation"`
}

func (s *DefaultLegalService) searchCourtListener(ctx context.Context, query string) ([]models.LegalSearchItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "o")
	params.Set("order_by", "score desc")
	params.Set("stat_Precedential", "on")
	params.Set("fields", "absolute_url,caseName,court,dateFiled,judge,citation")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.CourtListenerURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("courtlistener returned status %d", resp.StatusCode)
	}

	var body courtListenerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode courtlistener response: %w", err)
	}

	items := make([]models.LegalSearchItem, 0, maxResults)
	for i, r := range body.Results {
		if i == maxResults {
			break
		}
		item := models.LegalSearchItem{
			Title:    r.CaseName,
			Court:    r.Court,
			Date:     r.DateFiled,
			Citation: citationText(r.Citation),
		}
		if item.Title == "" {
			item.Title = "Case"
		}
		if r.AbsoluteURL != "" {
			item.URL = courtListenerHost + r.AbsoluteURL
		}
		items = append(items, item)
	}
	return items, nil
}

// citationText flattens CourtListener's citation field, which is either a
// string or a list of strings.
func citationText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	return ""
}
