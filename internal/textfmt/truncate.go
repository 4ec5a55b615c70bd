package textfmt

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultTruncateLimit is the default character limit for TruncateText.
	DefaultTruncateLimit = 80
	// DefaultPad is appended to truncated text.
	DefaultPad = "..."
	// DefaultURLLength is the default limit for TruncateURL.
	DefaultURLLength = 40
)

const truncateMarker = "{N}"

// truncatePunctuation is stripped once before padding so the pad never follows punctuation.
var truncatePunctuation = []string{".", ",", ";", "?", "!"}

// urlPrefixes are display noise removed by TruncateURL.
var urlPrefixes = []string{"http://", "https://", "www."}

// TruncateText shortens text to at most limit code points on a word boundary,
// appending pad when anything was removed. Text within the limit is returned
// unchanged.
func TruncateText(text string, limit int, pad string) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	wrapped := MbWordwrap(text, limit, truncateMarker, true)
	shortened := wrapped
	if idx := strings.Index(wrapped, truncateMarker); idx >= 0 {
		shortened = wrapped[:idx]
	}

	for _, p := range truncatePunctuation {
		if strings.HasSuffix(shortened, p) {
			shortened = strings.TrimSuffix(shortened, p)
			break
		}
	}
	return shortened + pad
}

// TruncateURL renders url for display: leading "http://", "https://" and "www."
// are each removed at most once, one trailing slash is dropped, and the result
// is truncated to length with DefaultPad.
func TruncateURL(url string, length int) string {
	used := make([]bool, len(urlPrefixes))
	for stripped := true; stripped; {
		stripped = false
		for i, prefix := range urlPrefixes {
			if !used[i] && strings.HasPrefix(url, prefix) {
				url = strings.TrimPrefix(url, prefix)
				used[i] = true
				stripped = true
			}
		}
	}
	url = strings.TrimSuffix(url, "/")
	return TruncateText(url, length, DefaultPad)
}
