package legacy

import (
	"strings"
)

// DBConfig is the read-only view of the legacy PHP database config used during
// migration. Only the two fields the merge rules consume are exposed.
type DBConfig interface {
	User() (string, bool)
	Password() (string, bool)
}

// phpArrayConfig holds scalar string pairs scanned from a PHP array literal.
type phpArrayConfig struct {
	values map[string]string
}

// User returns the "user" entry when present.
func (c phpArrayConfig) User() (string, bool) {
	v, ok := c.values["user"]
	return v, ok
}

// Password returns the "password" entry when present.
func (c phpArrayConfig) Password() (string, bool) {
	v, ok := c.values["password"]
	return v, ok
}

// ParseDBConfig scans PHP source returning an array literal such as
//
//	<?php
//	return array('user' => 'root', 'password' => 'secret');
//
// and collects every 'key' => scalar pair. The file is never executed. Nested
// arrays are flattened and the first occurrence of a key wins. Scanning stops at
// malformed input, keeping whatever was collected before it.
func ParseDBConfig(src []byte) DBConfig {
	tokens := lexPHP(string(src))
	values := make(map[string]string)
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].kind != phpString || tokens[i+1].kind != phpArrow {
			continue
		}
		value, ok := tokens[i+2].scalar()
		if !ok {
			continue
		}
		if _, seen := values[tokens[i].text]; !seen {
			values[tokens[i].text] = value
		}
	}
	return phpArrayConfig{values: values}
}

type phpTokenKind int

const (
	phpString phpTokenKind = iota
	phpWord
	phpArrow
	phpPunct
)

type phpToken struct {
	kind phpTokenKind
	text string
	// call marks a word directly followed by "(", such as getenv(...).
	call bool
}

// scalar converts a value token into its string form. Strings, numbers and
// booleans are accepted; null and other expressions are not.
func (t phpToken) scalar() (string, bool) {
	switch t.kind {
	case phpString:
		return t.text, true
	case phpWord:
		if t.call {
			return "", false
		}
		switch strings.ToLower(t.text) {
		case "true":
			return "1", true
		case "false":
			return "", true
		case "null":
			return "", false
		}
		if isPHPNumber(t.text) {
			return t.text, true
		}
	}
	return "", false
}

// lexPHP splits src into the few token kinds ParseDBConfig needs, skipping
// whitespace and comments.
func lexPHP(src string) []phpToken {
	var tokens []phpToken
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '#' || (c == '/' && i+1 < len(src) && src[i+1] == '/'):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return tokens
			}
			i += end + 1
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return tokens
			}
			i += end + 4
		case c == '\'' || c == '"':
			text, n, ok := readPHPString(src[i:])
			if !ok {
				return tokens
			}
			tokens = append(tokens, phpToken{kind: phpString, text: text})
			i += n
		case c == '=' && i+1 < len(src) && src[i+1] == '>':
			tokens = append(tokens, phpToken{kind: phpArrow, text: "=>"})
			i += 2
		case isPHPWordByte(c):
			start := i
			for i < len(src) && isPHPWordByte(src[i]) {
				i++
			}
			tokens = append(tokens, phpToken{kind: phpWord, text: src[start:i]})
		default:
			if c == '(' && len(tokens) > 0 && tokens[len(tokens)-1].kind == phpWord {
				tokens[len(tokens)-1].call = true
			}
			tokens = append(tokens, phpToken{kind: phpPunct, text: string(c)})
			i++
		}
	}
	return tokens
}

// readPHPString reads a quoted literal at the start of s and returns its
// unescaped contents and the number of bytes consumed.
func readPHPString(s string) (string, int, bool) {
	quote := s[0]
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == quote {
			return b.String(), i + 1, true
		}
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			if quote == '\'' {
				if next == '\'' || next == '\\' {
					b.WriteByte(next)
					i++
					continue
				}
			} else {
				switch next {
				case '"', '\\', '$':
					b.WriteByte(next)
					i++
					continue
				case 'n':
					b.WriteByte('\n')
					i++
					continue
				case 't':
					b.WriteByte('\t')
					i++
					continue
				case 'r':
					b.WriteByte('\r')
					i++
					continue
				}
			}
		}
		b.WriteByte(c)
	}
	return "", 0, false
}

func isPHPWordByte(c byte) bool {
	return c == '_' || c == '.' || c == '-' || c == '$' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isPHPNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case s[i] < '0' || s[i] > '9':
			return false
		}
	}
	return dots <= 1 && s != "."
}
