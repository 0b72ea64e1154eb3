package sanitizer

import (
	"strings"
	"unicode/utf16"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	textPipeline = Pipeline{
		RemoveControlCharacters,
		collapseWhitespaceRuns,
	}

	// control-char removal must run before trim/lowercase
	emailPipeline = Pipeline{
		RemoveControlCharacters,
		TrimSpace,
		strings.ToLower,
	}
)

// IsSpace reports whether r is in the browser whitespace class: the ECMAScript
// WhiteSpace and LineTerminator sets. Unlike unicode.IsSpace it includes
// U+FEFF and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// TrimSpace removes leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// UTF16Len returns the length of s in UTF-16 code units, the unit browsers
// use for string length. Runes outside the BMP count twice.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isControl(r rune) bool {
	return r <= 0x1F || r == 0x7F
}

// RemoveControlCharacters deletes every rune in U+0000-U+001F and U+007F.
func RemoveControlCharacters(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

// collapseWhitespaceRuns replaces each run of two or more whitespace runes
// with a single space. A lone whitespace rune is kept as is.
func collapseWhitespaceRuns(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !IsSpace(runes[i]) {
			result.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && IsSpace(runes[j]) {
			j++
		}
		if j-i >= 2 {
			result.WriteRune(' ')
		} else {
			result.WriteRune(runes[i])
		}
		i = j
	}

	return result.String()
}

// SanitizeTextInput removes control characters and collapses whitespace runs.
// Leading and trailing space is preserved.
func SanitizeTextInput(s string) string {
	return textPipeline.Apply(s)
}

func SanitizeEmailInput(s string) string {
	return emailPipeline.Apply(s)
}
