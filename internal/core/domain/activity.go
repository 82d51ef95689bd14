package domain

// Source tags recognised in Activity.Source. Provider adapters use their
// own names; these two cover the non-provider origins.
const (
	// SourceSample marks synthetic activities produced by the sample generator.
	SourceSample = "Mock Data"

	// SourceUnknown is the default when a raw record carries no origin tag.
	SourceUnknown = "Unknown"
)

// DefaultCategory is assigned when a provider supplies no category.
const DefaultCategory = "Event"

// DefaultLink is assigned when a provider supplies no event URL.
const DefaultLink = "#"

// RawActivity is the provider-shaped record before normalization.
// Adapters fill in what their API returns and leave the rest empty;
// every field tolerates being blank.
type RawActivity struct {
	// ID is the provider's identifier, already coerced to a string.
	ID string

	// Title is the event name as the provider reports it.
	Title string

	// Description may contain markup and arbitrary whitespace.
	Description string

	// Location is composed from the provider's venue fields.
	Location string

	// Date is the provider's date string in whatever format it uses.
	Date string

	// Time is the provider's time string in whatever format it uses.
	Time string

	// Category is the provider's classification, empty if absent.
	Category string

	// Image is a URL to a representative image, empty if absent.
	Image string

	// Source identifies the provider that produced this record.
	Source string

	// Link is the event's canonical URL, empty if absent.
	Link string
}

// Activity is the canonical normalized record returned to callers.
// Activities are value objects: created per search request, never
// mutated after normalization, never persisted.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	Link        string `json:"link"`
}

// SearchRequest is the inbound search payload.
type SearchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// SearchResponse is the envelope returned for a successful search.
type SearchResponse struct {
	Success    bool       `json:"success"`
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}
