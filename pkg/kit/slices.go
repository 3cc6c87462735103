package kit

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// DefaultTrimLength is the number of items TrimArray keeps when callers have no preference.
const DefaultTrimLength = 10

// TrimArray keeps the first maxLen items and appends a "N more..." marker for the rest.
func TrimArray(items []string, maxLen int) []string {
	if len(items) <= maxLen {
		return items
	}
	rest := len(items) - maxLen
	trimmed := slices.Clone(items[:maxLen])
	return append(trimmed, fmt.Sprintf("%d more...", rest))
}

// ShuffleArray returns a shuffled copy; the input is left untouched.
func ShuffleArray[T any](items []T) []T {
	shuffled := slices.Clone(items)
	mutable.Shuffle(shuffled)
	return shuffled
}

// RemoveDuplicates keeps the first occurrence of every value, preserving order.
func RemoveDuplicates[T comparable](items []T) []T {
	return lo.Uniq(items)
}
