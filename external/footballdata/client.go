// Package footballdata is the football-data.org v4 client backing the
// league feed. It covers the two read endpoints the pool needs: the
// competition's club list and a club's scheduled fixtures.
package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/lapolla/quiniela/internal/platform/logging"
	"github.com/lapolla/quiniela/internal/platform/resilience"
	"github.com/lapolla/quiniela/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultCompetition = "PD"
	maxResponseBytes   = 4 << 20
)

var errFeedTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Competition    string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	competition    string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.LeagueFeed = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	competition := strings.TrimSpace(cfg.Competition)
	if competition == "" {
		competition = defaultCompetition
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		competition:    competition,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type teamsEnvelope struct {
	Teams []feedTeam `json:"teams"`
}

type feedTeam struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	TLA   string `json:"tla"`
	Venue string `json:"venue"`
}

type matchesEnvelope struct {
	Matches []feedMatch `json:"matches"`
}

type feedMatch struct {
	ID          int64           `json:"id"`
	UTCDate     string          `json:"utcDate"`
	Competition feedCompetition `json:"competition"`
	HomeTeam    feedMatchTeam   `json:"homeTeam"`
	AwayTeam    feedMatchTeam   `json:"awayTeam"`
}

type feedCompetition struct {
	Code string `json:"code"`
}

type feedMatchTeam struct {
	ID int64 `json:"id"`
}

func (c *Client) FetchCompetitionTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	path := "/competitions/" + c.competition + "/teams"

	var envelope teamsEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch competition teams competition=%s: %w", c.competition, err)
	}

	out := make([]usecase.ExternalTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		if item.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalTeam{
			ID:    item.ID,
			Name:  strings.TrimSpace(item.Name),
			Short: strings.TrimSpace(item.TLA),
			Venue: strings.TrimSpace(item.Venue),
		})
	}

	return out, nil
}

func (c *Client) FetchTeamScheduledMatches(ctx context.Context, teamID int64) ([]usecase.ExternalMatch, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team id must be greater than zero")
	}

	path := "/teams/" + strconv.FormatInt(teamID, 10) + "/matches?status=SCHEDULED"

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch scheduled matches team_id=%d: %w", teamID, err)
	}

	out := make([]usecase.ExternalMatch, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		if item.ID <= 0 {
			continue
		}
		kickoff, err := time.Parse(time.RFC3339, item.UTCDate)
		if err != nil {
			c.logger.WarnContext(ctx, "skip fixture with unparseable kickoff",
				"match_id", item.ID, "utc_date", item.UTCDate)
			continue
		}
		out = append(out, usecase.ExternalMatch{
			ID:              item.ID,
			CompetitionCode: strings.TrimSpace(item.Competition.Code),
			HomeTeamID:      item.HomeTeam.ID,
			AwayTeamID:      item.AwayTeam.ID,
			KickoffAt:       kickoff.UTC(),
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.token == "" {
		return fmt.Errorf("%w: league feed token is not configured", usecase.ErrDependencyUnavailable)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "league feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: league data feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.fetchOnce(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !stderrors.Is(err, errFeedTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "league feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %s", errFeedTransient, sanitizeSensitiveText(err.Error(), c.token))
	}
	defer func() { _ = resp.Body.Close() }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errFeedTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: feed status=%d body=%s", errFeedTransient, resp.StatusCode, abbreviateBody(buf.Bytes()))
		}
		return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(buf.Bytes()))
	}

	// The pooled buffer is reused after Put, so hand back a copy.
	raw := make([]byte, buf.Len())
	copy(raw, buf.Bytes())
	return raw, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
