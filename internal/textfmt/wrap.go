package textfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth is the wrap width used when callers have no preference.
const DefaultWrapWidth = 75

// DefaultBreak is the default line break marker.
const DefaultBreak = "\n"

// phpWhitespace mirrors the characters stripped by trim/rtrim in the
// application's templates.
const phpWhitespace = " \t\n\r\x00\x0b"

// MbWordwrap wraps text to width code points per line using breakMarker.
// Existing breakMarker occurrences split the input into lines that are wrapped
// independently. Words are separated by single spaces; a word longer than width
// is hard-split into width-sized chunks when cut is true and otherwise emitted
// whole on its own line. An empty breakMarker falls back to DefaultBreak and a
// width below 1 is treated as 1.
func MbWordwrap(text string, width int, breakMarker string, cut bool) string {
	if breakMarker == "" {
		breakMarker = DefaultBreak
	}
	if width < 1 {
		width = 1
	}

	lines := strings.Split(text, breakMarker)
	for i, line := range lines {
		lines[i] = wrapLine(line, width, breakMarker, cut)
	}
	return strings.Join(lines, breakMarker)
}

func wrapLine(line string, width int, breakMarker string, cut bool) string {
	line = strings.TrimRight(line, phpWhitespace)
	if utf8.RuneCountInString(line) <= width {
		return line
	}

	var out strings.Builder
	actual := ""
	for _, word := range strings.Split(line, " ") {
		if utf8.RuneCountInString(actual+word) <= width {
			actual += word + " "
			continue
		}
		if actual != "" {
			out.WriteString(strings.TrimRight(actual, phpWhitespace))
			out.WriteString(breakMarker)
		}
		actual = word
		if cut {
			for utf8.RuneCountInString(actual) > width {
				head, rest := splitRunes(actual, width)
				out.WriteString(head)
				out.WriteString(breakMarker)
				actual = rest
			}
		}
		actual += " "
	}
	out.WriteString(strings.Trim(actual, phpWhitespace))
	return out.String()
}

// splitRunes splits s after the first n code points.
func splitRunes(s string, n int) (string, string) {
	count := 0
	for idx := range s {
		if count == n {
			return s[:idx], s[idx:]
		}
		count++
	}
	return s, ""
}
