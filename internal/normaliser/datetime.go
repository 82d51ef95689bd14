package normaliser

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. Each candidate input is truncated to
// the layout's length before a strict parse, so a combined timestamp
// still matches the plain date layout ahead of it in the list.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
	"01/02/2006",
	"02/01/2006",
}

// timeLayouts are tried in order against the whole input.
var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
}

// Date canonicalises a date string to YYYY-MM-DD. Inputs that match
// none of the known layouts come back unchanged rather than erroring;
// a best-effort original beats an empty field in a listing.
func Date(s string) string {
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		candidate := s
		if len(candidate) > len(layout) {
			candidate = candidate[:len(layout)]
		}
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return s
}

// Time canonicalises a time string to 24-hour HH:MM. 12-hour inputs
// are matched case-insensitively on the meridiem. Unrecognised inputs
// come back unchanged.
func Time(s string) string {
	if s == "" {
		return ""
	}

	trimmed := strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		candidate := trimmed
		if strings.Contains(layout, "PM") {
			candidate = strings.ToUpper(candidate)
		}
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("15:04")
		}
	}

	return s
}
