package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker("iris", 3, time.Minute, nil)

	for range 2 {
		require.True(t, cb.Allow())
		cb.RecordFailure()
	}
	require.Equal(t, CircuitStateClosed, cb.State())

	require.True(t, cb.Allow())
	cb.RecordFailure()
	require.Equal(t, CircuitStateOpen, cb.State())
	require.False(t, cb.Allow())
}

func TestCircuitBreakerProbesAfterResetTimeout(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker("iris", 1, 30*time.Second, nil)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	require.False(t, cb.Allow())

	now = now.Add(31 * time.Second)
	require.True(t, cb.Allow())
	require.Equal(t, CircuitStateHalfOpen, cb.State())
	require.False(t, cb.Allow(), "only one probe at a time")

	cb.RecordFailure()
	require.Equal(t, CircuitStateOpen, cb.State())

	now = now.Add(31 * time.Second)
	require.True(t, cb.Allow())
	cb.RecordSuccess()
	require.Equal(t, CircuitStateClosed, cb.State())
	require.True(t, cb.Allow())
}

func TestCircuitBreakerSuccessResetsCount(t *testing.T) {
	cb := NewCircuitBreaker("iris", 2, time.Minute, nil)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	require.Equal(t, CircuitStateClosed, cb.State())
	cb.Reset()
	require.Equal(t, CircuitStateClosed, cb.State())
}
