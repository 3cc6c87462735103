package kit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:          "0 Bytes",
		512:        "512 Bytes",
		1024:       "1 KB",
		1536:       "1.5 KB",
		1048576:    "1 MB",
		5368709120: "5 GB",
		-2048:      "-2 KB",
	}

	for input, want := range tests {
		require.Equal(t, want, FormatBytes(input), "input %d", input)
	}
}

func TestUptime(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 900*time.Millisecond

	require.Equal(t, "1 days, 2 hours, 3 minutes and 4 seconds", Uptime(d))
	require.Equal(t, "0 days, 0 hours, 0 minutes and 0 seconds", Uptime(0))
}

func TestFormatNumber(t *testing.T) {
	req := require.New(t)

	req.Equal("1,234,567.89", FormatNumber(1234567.891, 0))
	req.Equal("0.5", FormatNumber(0.5, 0))
	req.Equal("5.00", FormatNumber(5, 2))
	req.Equal("42", FormatNumber(42, -1))
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		roman := GenerateRoman(n)
		if got := GenerateNumeral(roman); got != n {
			t.Fatalf("GenerateNumeral(GenerateRoman(%d)) = %d (roman %q)", n, got, roman)
		}
	}
}

func TestRomanKnownValues(t *testing.T) {
	req := require.New(t)

	req.Equal("MCMXCIV", GenerateRoman(1994))
	req.Equal("MMMCMXCIX", GenerateRoman(3999))
	req.Equal("", GenerateRoman(0))
	req.Equal(1994, GenerateNumeral("mcmxciv"))
}
