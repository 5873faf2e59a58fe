package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

const (
	SourceID   = "fixtures"
	SourceName = "Football Fixtures Feed"
)

// Source fetches upcoming football fixtures for the daily discovery cycle.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg config.ClientConfig, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchFixtures fetches all fixtures kicking off between from and to,
// following the feed's pagination.
func (s *Source) FetchFixtures(ctx context.Context, from, to time.Time) ([]domain.RawMatch, error) {
	var all []Fixture

	for page := 0; ; page++ {
		resp, err := s.fetchPage(ctx, from, to, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, resp.Fixtures...)

		s.logger.Debug("fetched page",
			"page", page,
			"fixtures", len(resp.Fixtures),
			"total", len(all),
		)

		if page >= resp.PageInfo.NumPages-1 {
			break
		}
	}

	return s.transform(all), nil
}

func (s *Source) fetchPage(ctx context.Context, from, to time.Time, page int) (*APIResponse, error) {
	url := fmt.Sprintf("%s?from=%s&to=%s&pageSize=%d&page=%d",
		s.baseURL,
		from.UTC().Format("2006-01-02"),
		to.UTC().Format("2006-01-02"),
		s.pageSize,
		page,
	)

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, url)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Matchcast/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(fixtures []Fixture) []domain.RawMatch {
	matches := make([]domain.RawMatch, 0, len(fixtures))

	for _, f := range fixtures {
		kickoff, err := time.Parse(time.RFC3339, f.KickoffAt)
		if err != nil {
			s.logger.Warn("failed to parse kickoff time",
				"external_id", f.ID,
				"kickoff", f.KickoffAt,
			)
			continue
		}

		matches = append(matches, domain.RawMatch{
			ExternalID:    f.ID,
			HomeTeamID:    f.HomeTeamID,
			AwayTeamID:    f.AwayTeamID,
			HomeTeam:      f.HomeTeam,
			AwayTeam:      f.AwayTeam,
			CompetitionID: f.Competition,
			KickoffAt:     kickoff,
		})
	}

	return matches
}
