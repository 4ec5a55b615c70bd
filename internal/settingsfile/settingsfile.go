// Package settingsfile reads and renders the flat ini-like settings format
// shared by env.ini and its legacy predecessor.
package settingsfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/settings"
)

// SectionName is the single section written to the canonical file.
const SectionName = "configuration"

// Header is the fixed comment block written before the section marker.
var Header = []string{
	";",
	"; AzuraCast Environment Settings",
	";",
	"; This file is automatically generated by AzuraCast.",
	";",
}

// Options controls rendering.
type Options struct {
	// EscapeQuotes writes embedded double quotes as \" instead of verbatim.
	EscapeQuotes bool
}

// loadOptions makes parsing best-effort: unrecognizable lines are skipped and
// double-quoted values are unquoted with \" unescaped.
var loadOptions = ini.LoadOptions{
	SkipUnrecognizableLines:   true,
	UnescapeValueDoubleQuotes: true,
	IgnoreContinuation:        true,
}

// ErrMalformed marks content with lines that could not be read. Parse still
// returns every pair recovered from the other lines alongside it.
var ErrMalformed = errors.New(messages.SettingsMalformed)

// Parse reads settings content into an ordered mapping. Sections are flattened
// in file order and later duplicates overwrite earlier values.
// Each line is read on its own so one bad line cannot swallow or discard the
// rest; lines that stay unreadable are reported through ErrMalformed.
func Parse(content []byte) (*settings.Mapping, error) {
	m := settings.New()
	var errs []error
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		if err := parseLine(m, line); err != nil {
			errs = append(errs, fmt.Errorf(messages.SettingsLineFmt, i+1, err))
		}
	}
	if len(errs) > 0 {
		return m, fmt.Errorf("%w: %w", ErrMalformed, errors.Join(errs...))
	}
	return m, nil
}

func parseLine(m *settings.Mapping, line string) error {
	if _, value, ok := strings.Cut(line, "="); ok && strings.HasPrefix(strings.TrimSpace(value), `"""`) {
		return setSplit(m, line, errors.New(messages.SettingsUnreadableLine))
	}
	file, err := ini.LoadSources(loadOptions, []byte(line))
	if err != nil {
		return setSplit(m, line, err)
	}
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			m.Set(key.Name(), key.Value())
		}
	}
	return nil
}

// setSplit stores a key="value" line as written, stripping one pair of
// surrounding double quotes. This is the inverse of verbatim rendering and
// covers values that are themselves runs of quotes. cause is returned when
// line has no usable key.
func setSplit(m *settings.Mapping, line string, cause error) error {
	key, value, ok := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" || strings.ContainsAny(key[:1], "\"`[;#") {
		return cause
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	m.Set(key, value)
	return nil
}

// Render formats m as the canonical settings file: header, section marker,
// then one key="value" line per key in insertion order. Lines are joined with
// "\n" and the output has no trailing newline.
func Render(m *settings.Mapping, opts Options) string {
	lines := make([]string, 0, len(Header)+1+m.Len())
	lines = append(lines, Header...)
	lines = append(lines, fmt.Sprintf("[%s]", SectionName))
	m.Each(func(key string, value string) {
		lines = append(lines, fmt.Sprintf(`%s="%s"`, key, encodeValue(value, opts)))
	})
	return strings.Join(lines, "\n")
}

// encodeValue returns val ready to be wrapped in double quotes.
// Values are written verbatim unless opts.EscapeQuotes is set.
func encodeValue(val string, opts Options) string {
	if !opts.EscapeQuotes {
		return val
	}
	return strings.ReplaceAll(val, `"`, `\"`)
}
