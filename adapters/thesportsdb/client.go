package thesportsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/XavierBriggs/Herald/internal/metrics"
	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/pkg/models"
)

const (
	DefaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	DefaultSource  = "thesportsdb"
	userAgent      = "Herald/1.0 (Broadcast Linker)"
	defaultTimeout = 10 * time.Second
	maxRetries     = 3
	retryDelay     = 2 * time.Second

	endpointTV     = "eventstv"
	endpointEvents = "eventsday"
)

// Config configures the TheSportsDB client
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Source     string
	RetryDelay time.Duration
}

// Client implements the ScheduleAdapter interface for TheSportsDB
type Client struct {
	baseURL    string
	apiKey     string
	source     string
	retryDelay time.Duration
	httpClient *http.Client
}

// Ensure Client implements ScheduleAdapter
var _ contracts.ScheduleAdapter = (*Client)(nil)

// NewClient creates a new TheSportsDB client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = retryDelay
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		source:     cfg.Source,
		retryDelay: cfg.RetryDelay,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// SourceName identifies this provider on persisted rows
func (c *Client) SourceName() string {
	return c.source
}

// FetchTVSchedule retrieves the TV listings for one sport and day
func (c *Client) FetchTVSchedule(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error) {
	body, err := c.doRequestWithRetry(ctx, endpointTV, c.buildURL(endpointTV, opts))
	if err != nil {
		return nil, fmt.Errorf("fetch tv schedule failed: %w", err)
	}

	var apiResp tvResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse tv schedule response: %w", err)
	}

	return parseTVResponse(apiResp), nil
}

// FetchFixtures retrieves the scheduled events for one sport and day
func (c *Client) FetchFixtures(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.Fixture, error) {
	body, err := c.doRequestWithRetry(ctx, endpointEvents, c.buildURL(endpointEvents, opts))
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures failed: %w", err)
	}

	var apiResp eventsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse fixtures response: %w", err)
	}

	return parseEventsResponse(apiResp, opts.SportKey), nil
}

// buildURL creates a v1 endpoint URL: {base}/{key}/{endpoint}.php?d={date}&s={sport}
func (c *Client) buildURL(endpoint string, opts *models.FetchScheduleOptions) string {
	params := url.Values{}
	params.Set("d", opts.Date)
	if opts.Sport != "" {
		params.Set("s", opts.Sport)
	}

	return fmt.Sprintf("%s/%s/%s.php?%s", c.baseURL, url.PathEscape(c.apiKey), endpoint, params.Encode())
}

// doRequestWithRetry performs HTTP request with retry logic
func (c *Client) doRequestWithRetry(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := c.retryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, endpoint, fullURL)
		if err == nil {
			return body, nil
		}

		lastErr = err

		// Don't retry on client errors (4xx except 429)
		var httpErr *httpError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 && httpErr.StatusCode != http.StatusTooManyRequests {
				return nil, err
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// parseTVResponse converts TV listings to broadcast records
func parseTVResponse(apiResp tvResponse) []models.BroadcastRecord {
	records := make([]models.BroadcastRecord, 0, len(apiResp.TVEvents))

	for _, evt := range apiResp.TVEvents {
		home, away := SplitEventName(evt.Event)
		records = append(records, models.BroadcastRecord{
			EventID:   evt.EventID,
			EventName: evt.Event,
			Sport:     evt.Sport,
			League:    evt.League,
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      normalizeDate(evt.DateEvent),
			Time:      normalizeTime(evt.Time),
			Channel:   strings.TrimSpace(evt.Channel),
			Country:   strings.TrimSpace(evt.Country),
		})
	}

	return records
}

// parseEventsResponse converts scheduled events to fixtures
func parseEventsResponse(apiResp eventsResponse, sportKey string) []models.Fixture {
	fixtures := make([]models.Fixture, 0, len(apiResp.Events))

	for _, evt := range apiResp.Events {
		if evt.EventID == "" || evt.HomeTeam == "" || evt.AwayTeam == "" {
			continue // Skip events without both sides
		}

		sport := sportKey
		if sport == "" {
			sport = strings.ToLower(evt.Sport)
		}

		fixtures = append(fixtures, models.Fixture{
			ID:     evt.EventID,
			Sport:  sport,
			League: evt.League,
			Home:   evt.HomeTeam,
			Away:   evt.AwayTeam,
			Date:   normalizeDate(evt.DateEvent),
			Time:   normalizeTime(evt.Time),
		})
	}

	return fixtures
}

// eventSeparators are tried in order; "@" listings put the away side first
var eventSeparators = []struct {
	sep      string
	awayHome bool
}{
	{sep: " vs ", awayHome: false},
	{sep: " vs. ", awayHome: false},
	{sep: " v ", awayHome: false},
	{sep: " @ ", awayHome: true},
}

// SplitEventName derives home and away team names from a listing title.
// "Arsenal vs Chelsea" -> (Arsenal, Chelsea); "Lakers @ Celtics" -> (Celtics, Lakers).
// Titles without a separator yield empty names.
func SplitEventName(event string) (home, away string) {
	lower := strings.ToLower(event)
	if len(lower) != len(event) {
		lower = event
	}
	for _, s := range eventSeparators {
		i := strings.Index(lower, s.sep)
		if i < 0 {
			continue
		}
		left := strings.TrimSpace(event[:i])
		right := strings.TrimSpace(event[i+len(s.sep):])
		if s.awayHome {
			return right, left
		}
		return left, right
	}
	return "", ""
}

// normalizeDate keeps the calendar part of a provider date
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		date = date[:i]
	}
	return date
}

// normalizeTime keeps HH:MM[:SS], dropping any UTC offset suffix
func normalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if i := strings.IndexAny(t, "+Z"); i >= 0 {
		t = t[:i]
	}
	return t
}

// httpError represents an HTTP error with status code
type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// API response structures matching the TheSportsDB v1 JSON format

type tvResponse struct {
	TVEvents []tvEvent `json:"tvevents"`
}

type tvEvent struct {
	EventID   string `json:"idEvent"`
	Event     string `json:"strEvent"`
	Sport     string `json:"strSport"`
	League    string `json:"strLeague"`
	Channel   string `json:"strChannel"`
	Country   string `json:"strCountry"`
	DateEvent string `json:"dateEvent"`
	Time      string `json:"strTime"`
}

type eventsResponse struct {
	Events []event `json:"events"`
}

type event struct {
	EventID   string `json:"idEvent"`
	Sport     string `json:"strSport"`
	League    string `json:"strLeague"`
	HomeTeam  string `json:"strHomeTeam"`
	AwayTeam  string `json:"strAwayTeam"`
	DateEvent string `json:"dateEvent"`
	Time      string `json:"strTime"`
}
