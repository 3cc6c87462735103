package kit

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultIDLength is the length CreateID callers use for short room or lobby codes.
const DefaultIDLength = 4

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomNumber returns an integer in [lo, hi]. The bounds may be given in either order.
func RandomNumber(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return rand.IntN(hi-lo+1) + lo
}

// CreateID returns a random alphanumeric string. Not suitable for secrets.
func CreateID(length int) string {
	if length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}

// NewUUID returns a random RFC 4122 identifier.
func NewUUID() string {
	return uuid.NewString()
}

// Delay blocks for d or until ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
