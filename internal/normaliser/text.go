package normaliser

import (
	"regexp"
	"strings"
)

// MaxTextLen is the longest a cleaned text field may be, including the
// ellipsis marker appended on truncation.
const MaxTextLen = 500

// ellipsis marks truncated text.
const ellipsis = "..."

// markupTags matches anything that looks like an HTML/XML tag.
var markupTags = regexp.MustCompile(`<[^>]+>`)

// CleanText strips markup-like tags, collapses whitespace runs to
// single spaces, trims, and truncates over-long text to MaxTextLen
// with an ellipsis marker. Empty input yields "". CleanText is
// idempotent: cleaning already-clean text changes nothing.
func CleanText(s string) string {
	if s == "" {
		return ""
	}

	s = markupTags.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")

	if runes := []rune(s); len(runes) > MaxTextLen {
		s = string(runes[:MaxTextLen-len(ellipsis)]) + ellipsis
	}

	return s
}
