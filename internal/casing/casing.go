// Package casing re-cases keywords and names at emission time. Literals and
// extended identifiers are always emitted verbatim.
package casing

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a casing style as spelled in the config file.
type Style string

const (
	Lower    Style = "lower_case"
	Upper    Style = "UPPER_CASE"
	Preserve Style = "preserve"
	Snake    Style = "snake_case"
)

// Styles lists the accepted spellings, for error messages.
var Styles = []Style{Lower, Upper, Preserve, Snake}

// ParseStyle accepts the canonical spellings plus "lower" and "upper".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "lower_case", "lower":
		return Lower, nil
	case "UPPER_CASE", "upper":
		return Upper, nil
	case "preserve":
		return Preserve, nil
	case "snake_case":
		return Snake, nil
	}
	return "", fmt.Errorf("unknown casing style %q", s)
}

// Verbatim reports whether text is never re-cased: extended identifiers,
// string, character, bit-string and numeric literals.
func Verbatim(text string) bool {
	if text == "" {
		return true
	}
	switch c := text[0]; {
	case c == '\\', c == '"', c == '\'':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	// bit string: X"FF", 8UX"0F"
	return strings.ContainsAny(text, "\"")
}

// Apply re-cases text according to style.
func Apply(text string, style Style) string {
	if Verbatim(text) {
		return text
	}
	switch style {
	case Lower:
		return cases.Lower(language.Und).String(text)
	case Upper:
		return cases.Upper(language.Und).String(text)
	case Snake:
		return cases.Lower(language.Und).String(splitHumps(text))
	}
	return text
}

// splitHumps вставляет '_' на границах горбов: fooBar -> foo_Bar, HTTPServer -> HTTP_Server.
func splitHumps(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
