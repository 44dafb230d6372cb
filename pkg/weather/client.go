// Package weather fetches a current-conditions-plus-forecast report for a
// ZIP or location string from a wttr.in-style JSON endpoint. One synchronous
// call per screen visit, bounded timeout, no caching.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable covers every fetch failure mode: transport errors, non-200
// responses and unparseable bodies. Callers render a generic error screen.
var ErrUnavailable = errors.New("weather unavailable")

const userAgent = "inkdeck/1.0 (e-ink dashboard)"

// Report is the parsed forecast document.
type Report struct {
	Location string
	Current  Conditions
	Days     []Day // today and tomorrow
}

// Conditions describes the current weather.
type Conditions struct {
	TempF    string
	Desc     string
	Humidity string
	WindMph  string
}

// Day is a single-day forecast summary.
type Day struct {
	Label string // "Today" / "Tomorrow"
	HighF string
	LowF  string
	Desc  string
}

// Fetcher is the single-call contract the UI depends on.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*Report, error)
}

// Client fetches reports over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a Client for the given endpoint with a bounded timeout.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch performs one GET and parses the response. All failures come back as
// ErrUnavailable with the cause wrapped alongside for the log.
func (c *Client) Fetch(ctx context.Context, location string) (*Report, error) {
	u := fmt.Sprintf("%s/%s?format=j1", c.endpoint, url.PathEscape(location))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("weather request failed", "location", location, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("weather request rejected", "location", location, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	report, err := parse(body)
	if err != nil {
		slog.Warn("weather response unparseable", "location", location, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return report, nil
}
