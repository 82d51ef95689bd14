// Package eventbrite adapts the Eventbrite search API to the Provider
// interface. Eventbrite is the primary provider: its schema is the most
// complete, carrying venue, organizer, category and image data.
package eventbrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/logger"
	"github.com/oakway-labs/eventscout/internal/providers"
)

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

const (
	// Name is the source tag stamped on every Eventbrite record.
	Name = "Eventbrite"

	// DefaultBaseURL is the production search endpoint.
	DefaultBaseURL = "https://www.eventbriteapi.com/v3/events/search/"

	// DefaultTimeout bounds a single search call.
	DefaultTimeout = 10 * time.Second

	// searchRadius around the requested location. Not caller-tunable.
	searchRadius = "25mi"

	// pageSize is the number of events requested per search.
	pageSize = 20
)

// Config holds the Eventbrite adapter configuration.
type Config struct {
	// Token is the private OAuth token. Empty disables the adapter.
	Token string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Provider queries the Eventbrite events search API.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter *providers.RateLimiter
	now     func() time.Time
}

// New creates an Eventbrite provider. An empty token yields a disabled
// provider whose Search always returns empty.
func New(cfg Config) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		limiter: providers.NewRateLimiter(providers.DefaultRateLimit),
		now:     time.Now,
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return Name
}

// Enabled reports whether a token is configured.
func (p *Provider) Enabled() bool {
	return p.cfg.Token != ""
}

// Search queries Eventbrite for events matching the query near the
// location. Disabled providers return empty without error.
func (p *Provider) Search(ctx context.Context, query, location string) ([]domain.RawActivity, error) {
	if !p.Enabled() {
		logger.Debug("eventbrite: no token configured, skipping")
		return nil, nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.Token)

	// Limit the search to the coming year so expired listings never
	// show up.
	start := p.now()
	q := url.Values{}
	q.Set("q", query)
	q.Set("location.address", location)
	q.Set("location.within", searchRadius)
	q.Set("start_date.range_start", start.Format("2006-01-02T15:04:05"))
	q.Set("start_date.range_end", start.AddDate(1, 0, 0).Format("2006-01-02T15:04:05"))
	q.Set("sort_by", "date")
	q.Set("expand", "venue,organizer")
	q.Set("page_size", strconv.Itoa(pageSize))
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eventbrite request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		p.limiter.RecordRateLimitError(retryAfter)
		return nil, fmt.Errorf("eventbrite rate limited: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eventbrite status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode eventbrite response: %w", err)
	}

	activities := make([]domain.RawActivity, 0, len(payload.Events))
	for _, ev := range payload.Events {
		activities = append(activities, mapEvent(ev))
	}

	logger.Info("eventbrite: %d events for %q near %q", len(activities), query, location)
	return activities, nil
}

// searchResponse mirrors the subset of the Eventbrite payload we read.
// Every nested object is optional; pointers keep absence distinguishable.
type searchResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID          providers.StringID `json:"id"`
	Name        *textWrapper       `json:"name"`
	Description *textWrapper       `json:"description"`
	URL         string             `json:"url"`
	Start       *startTime         `json:"start"`
	Venue       *venue             `json:"venue"`
	Category    *category          `json:"category"`
	Logo        *logo              `json:"logo"`
}

type textWrapper struct {
	Text string `json:"text"`
}

type startTime struct {
	Local string `json:"local"`
}

type venue struct {
	Name    string   `json:"name"`
	Address *address `json:"address"`
}

type address struct {
	LocalizedAreaDisplay string `json:"localized_area_display"`
}

type category struct {
	Name string `json:"name"`
}

type logo struct {
	URL string `json:"url"`
}

// mapEvent flattens one Eventbrite event into the common raw shape.
// Any missing nested object degrades to an empty field.
func mapEvent(ev event) domain.RawActivity {
	raw := domain.RawActivity{
		ID:       ev.ID.String(),
		Source:   Name,
		Link:     ev.URL,
		Category: domain.DefaultCategory,
	}

	if ev.Name != nil {
		raw.Title = ev.Name.Text
	}
	if ev.Description != nil {
		raw.Description = ev.Description.Text
	}
	if ev.Venue != nil {
		area := ""
		if ev.Venue.Address != nil {
			area = ev.Venue.Address.LocalizedAreaDisplay
		}
		raw.Location = fmt.Sprintf("%s, %s", ev.Venue.Name, area)
	}
	if ev.Start != nil {
		raw.Date, raw.Time = splitLocal(ev.Start.Local)
	}
	if ev.Category != nil && ev.Category.Name != "" {
		raw.Category = ev.Category.Name
	}
	if ev.Logo != nil {
		raw.Image = ev.Logo.URL
	}

	return raw
}

// splitLocal splits a combined "2006-01-02T15:04:05" timestamp into its
// date part and the HH:MM prefix of its time part.
func splitLocal(local string) (date, clock string) {
	if local == "" {
		return "", ""
	}
	idx := strings.Index(local, "T")
	if idx < 0 {
		return local, ""
	}
	date = local[:idx]
	clock = local[idx+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return date, clock
}
