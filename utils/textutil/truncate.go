// Package textutil provides rune-safe text truncation helpers shared by the
// translator and the social poster.
package textutil

import "strings"

// Ellipsis is appended when a hard cut was unavoidable.
const Ellipsis = "…"

// runes that end a sentence in either language.
var sentenceEnders = []rune{'。', '．', '.', '!', '?', '！', '？'}

// TruncateAtBreak shortens s to at most maxRunes runes, preferring a natural
// break point. The last sentence-ending punctuation or whitespace at or after
// half the budget wins; when no break exists the text is hard-cut and the
// ellipsis marker appended. Multi-byte runes are never split.
func TruncateAtBreak(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}

	window := runes[:maxRunes]
	minBreak := maxRunes / 2

	if idx := lastSentenceEnd(window, minBreak); idx >= 0 {
		return string(window[:idx+1])
	}
	if idx := lastWhitespace(window, minBreak); idx >= 0 {
		return strings.TrimRight(string(window[:idx]), " \t　") + Ellipsis
	}

	// No acceptable break in the window, hard cut.
	if maxRunes > len([]rune(Ellipsis)) {
		return string(runes[:maxRunes-1]) + Ellipsis
	}
	return string(window)
}

func lastSentenceEnd(window []rune, minBreak int) int {
	for i := len(window) - 1; i >= minBreak; i-- {
		for _, e := range sentenceEnders {
			if window[i] == e {
				return i
			}
		}
	}
	return -1
}

func lastWhitespace(window []rune, minBreak int) int {
	for i := len(window) - 1; i >= minBreak; i-- {
		if window[i] == ' ' || window[i] == '\t' || window[i] == '\n' || window[i] == '　' {
			return i
		}
	}
	return -1
}

// RuneLen counts runes, not bytes.
func RuneLen(s string) int {
	return len([]rune(s))
}
