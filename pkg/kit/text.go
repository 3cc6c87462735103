// Package kit holds the stateless helpers shared by commands: text and slice
// shaping, number formatting, hashing, encoding and random identifiers.
package kit

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultShortenLength matches the message length cap of most chat platforms.
const DefaultShortenLength = 2000

var upper = cases.Upper(language.Und)

// Shorten cuts text to maxRunes runes, replacing the tail with "..." when it had to cut.
func Shorten(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	if maxRunes < 3 {
		return string(runes[:max(maxRunes, 0)])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// Normalize lower-cases and trims s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FirstUpperCase upper-cases the first rune of every sep-separated word and
// joins the words back with a single space.
func FirstUpperCase(text, sep string) string {
	if sep == "" {
		sep = " "
	}
	words := strings.Split(text, sep)
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = upper.String(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// List joins items into a human list: "a", "a and b", "a, b, and c".
func List(items []string, conj string) string {
	if conj == "" {
		conj = "and"
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + ", " + conj + " " + items[last]
}

// SortByName returns a case-insensitively sorted copy of names.
func SortByName(names []string) []string {
	sorted := slices.Clone(names)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return sorted
}
