// Package ticketmaster adapts the Ticketmaster Discovery API to the
// Provider interface. Ticketmaster skews towards entertainment events;
// its payload nests venues one level down under an "_embedded" wrapper
// and categorises through a classification taxonomy.
package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/logger"
	"github.com/oakway-labs/eventscout/internal/providers"
)

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

const (
	// Name is the source tag stamped on every Ticketmaster record.
	Name = "Ticketmaster"

	// DefaultBaseURL is the production Discovery events endpoint.
	DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

	// DefaultTimeout bounds a single search call.
	DefaultTimeout = 10 * time.Second

	// DefaultCategory is used when an event has no classification.
	DefaultCategory = "Entertainment"

	// searchRadiusMiles around the requested city. Not caller-tunable.
	searchRadiusMiles = 25

	// pageSize is the number of events requested per search.
	pageSize = 20
)

// Config holds the Ticketmaster adapter configuration.
type Config struct {
	// APIKey is the Discovery API consumer key. Empty disables the adapter.
	APIKey string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Provider queries the Ticketmaster Discovery API.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter *providers.RateLimiter
}

// New creates a Ticketmaster provider. An empty API key yields a
// disabled provider whose Search always returns empty.
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
		limiter: providers.NewRateLimiter(providers.RateLimitConfig{RequestsPerSecond: 5, BurstSize: 5}),
	}
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return Name
}

// Enabled reports whether an API key is configured.
func (p *Provider) Enabled() bool {
	return p.cfg.APIKey != ""
}

// Search queries Ticketmaster for events matching the keyword in the
// given city. Disabled providers return empty without error.
func (p *Provider) Search(ctx context.Context, query, location string) ([]domain.RawActivity, error) {
	if !p.Enabled() {
		logger.Debug("ticketmaster: no API key configured, skipping")
		return nil, nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	q := url.Values{}
	q.Set("apikey", p.cfg.APIKey)
	q.Set("keyword", query)
	q.Set("city", location)
	q.Set("radius", strconv.Itoa(searchRadiusMiles))
	q.Set("unit", "miles")
	q.Set("size", strconv.Itoa(pageSize))
	q.Set("sort", "date,asc")
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		p.limiter.RecordRateLimitError(retryAfter)
		return nil, fmt.Errorf("ticketmaster rate limited: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticketmaster status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode ticketmaster response: %w", err)
	}

	var events []event
	if payload.Embedded != nil {
		events = payload.Embedded.Events
	}

	activities := make([]domain.RawActivity, 0, len(events))
	for _, ev := range events {
		activities = append(activities, mapEvent(ev))
	}

	logger.Info("ticketmaster: %d events for %q in %q", len(activities), query, location)
	return activities, nil
}

// searchResponse mirrors the subset of the Discovery payload we read.
type searchResponse struct {
	Embedded *responseEmbedded `json:"_embedded"`
}

type responseEmbedded struct {
	Events []event `json:"events"`
}

type event struct {
	ID              providers.StringID `json:"id"`
	Name            string             `json:"name"`
	Info            string             `json:"info"`
	PleaseNote      string             `json:"pleaseNote"`
	URL             string             `json:"url"`
	Dates           *dates             `json:"dates"`
	Classifications []classification   `json:"classifications"`
	Images          []image            `json:"images"`
	Embedded        *eventEmbedded     `json:"_embedded"`
}

type eventEmbedded struct {
	Venues []venue `json:"venues"`
}

type venue struct {
	Name string `json:"name"`
	City *city  `json:"city"`
}

type city struct {
	Name string `json:"name"`
}

type dates struct {
	Start *start `json:"start"`
}

type start struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

type classification struct {
	Segment *segment `json:"segment"`
}

type segment struct {
	Name string `json:"name"`
}

type image struct {
	URL string `json:"url"`
}

// mapEvent flattens one Discovery event into the common raw shape.
// Any missing nested object degrades to an empty field.
func mapEvent(ev event) domain.RawActivity {
	raw := domain.RawActivity{
		ID:          ev.ID.String(),
		Title:       ev.Name,
		Description: ev.Info,
		Source:      Name,
		Link:        ev.URL,
		Category:    DefaultCategory,
	}

	if raw.Description == "" {
		raw.Description = ev.PleaseNote
	}

	if ev.Embedded != nil && len(ev.Embedded.Venues) > 0 {
		v := ev.Embedded.Venues[0]
		cityName := ""
		if v.City != nil {
			cityName = v.City.Name
		}
		raw.Location = fmt.Sprintf("%s, %s", v.Name, cityName)
	}

	if ev.Dates != nil && ev.Dates.Start != nil {
		raw.Date = ev.Dates.Start.LocalDate
		raw.Time = ev.Dates.Start.LocalTime
	}

	if len(ev.Classifications) > 0 && ev.Classifications[0].Segment != nil && ev.Classifications[0].Segment.Name != "" {
		raw.Category = ev.Classifications[0].Segment.Name
	}

	if len(ev.Images) > 0 {
		raw.Image = ev.Images[0].URL
	}

	return raw
}
